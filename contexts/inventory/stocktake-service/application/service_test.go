package application

import (
	"context"
	"errors"
	"testing"

	"tanavent/contexts/inventory/stocktake-service/adapters/memory"
	"tanavent/contexts/inventory/stocktake-service/domain/entities"
	domainerrors "tanavent/contexts/inventory/stocktake-service/domain/errors"
	"tanavent/contexts/inventory/stocktake-service/ports"
)

func newService(store *memory.Store) Service {
	return Service{
		Repo:        store,
		Sections:    store,
		Memberships: store,
		Items:       store,
		Clock:       store,
		IDGenerator: store,
	}
}

func seedTenant(store *memory.Store, orgID, sectionID, userID string) {
	store.SeedSection(ports.SectionRef{SectionID: sectionID, OrganizationID: orgID})
	store.SeedMembership(orgID, userID)
}

func openSession(t *testing.T, service Service, callerID, orgID, sectionID string) entities.Session {
	t.Helper()
	session, err := service.OpenSession(context.Background(), callerID, ports.OpenSessionInput{
		OrganizationID: orgID,
		SectionID:      sectionID,
		Name:           "October count",
	})
	if err != nil {
		t.Fatalf("open session failed: %v", err)
	}
	return session
}

func TestOpenSessionValidatesPairingBeforeMembership(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	seedTenant(store, "org-2", "section-2", "member-2")

	_, err := service.OpenSession(context.Background(), "outsider", ports.OpenSessionInput{
		OrganizationID: "org-1",
		SectionID:      "section-2",
		Name:           "October count",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for bad pairing, got %v", err)
	}

	_, err = service.OpenSession(context.Background(), "outsider", ports.OpenSessionInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "October count",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for valid pairing, got %v", err)
	}

	session := openSession(t, service, "member-1", "org-1", "section-1")
	if session.Status != entities.SessionOpen {
		t.Fatalf("expected open status, got %q", session.Status)
	}
	if session.ClosedAt != nil {
		t.Fatalf("expected nil closedAt on open session, got %v", session.ClosedAt)
	}
}

func TestRecordCountSnapshotsExpectedOnce(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	store.SeedItem(ports.ItemRef{ItemID: "item-1", SectionID: "section-1", Quantity: 12})

	session := openSession(t, service, "member-1", "org-1", "section-1")

	first, err := service.RecordCount(context.Background(), "member-1", session.SessionID, "item-1", 10)
	if err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	if first.ExpectedQuantity != 12 {
		t.Fatalf("expected snapshot of current stock, got %v", first.ExpectedQuantity)
	}
	if first.Diff() != -2 {
		t.Fatalf("expected diff -2, got %v", first.Diff())
	}

	// Stock moves between counts; the snapshot must not.
	store.SeedItem(ports.ItemRef{ItemID: "item-1", SectionID: "section-1", Quantity: 15})

	second, err := service.RecordCount(context.Background(), "member-1", session.SessionID, "item-1", 11)
	if err != nil {
		t.Fatalf("re-record failed: %v", err)
	}
	if second.RecordID != first.RecordID {
		t.Fatalf("re-recording must overwrite the same record, got %q and %q", first.RecordID, second.RecordID)
	}
	if second.ExpectedQuantity != 12 {
		t.Fatalf("expected snapshot to be kept, got %v", second.ExpectedQuantity)
	}
	if second.ActualQuantity != 11 {
		t.Fatalf("expected overwritten actual, got %v", second.ActualQuantity)
	}

	records, err := store.ListRecords(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("list records failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single record per item, got %d", len(records))
	}
}

func TestRecordCountRejectsForeignItem(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	seedTenant(store, "org-1", "section-other", "member-1")
	store.SeedItem(ports.ItemRef{ItemID: "item-elsewhere", SectionID: "section-other", Quantity: 3})

	session := openSession(t, service, "member-1", "org-1", "section-1")

	_, err := service.RecordCount(context.Background(), "member-1", session.SessionID, "item-elsewhere", 2)
	if !errors.Is(err, domainerrors.ErrItemNotInSection) {
		t.Fatalf("expected ErrItemNotInSection, got %v", err)
	}

	_, err = service.RecordCount(context.Background(), "member-1", session.SessionID, "no-such-item", 2)
	if !errors.Is(err, domainerrors.ErrItemNotInSection) {
		t.Fatalf("expected ErrItemNotInSection for unknown item, got %v", err)
	}
}

func TestRecordCountRejectsNegativeActual(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	store.SeedItem(ports.ItemRef{ItemID: "item-1", SectionID: "section-1", Quantity: 5})

	session := openSession(t, service, "member-1", "org-1", "section-1")

	_, err := service.RecordCount(context.Background(), "member-1", session.SessionID, "item-1", -1)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestCloseSessionAppliesCounts(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	store.SeedItem(ports.ItemRef{ItemID: "item-1", SectionID: "section-1", Quantity: 12})
	store.SeedItem(ports.ItemRef{ItemID: "item-2", SectionID: "section-1", Quantity: 4})
	store.SeedItem(ports.ItemRef{ItemID: "item-uncounted", SectionID: "section-1", Quantity: 7})

	session := openSession(t, service, "member-1", "org-1", "section-1")

	if _, err := service.RecordCount(context.Background(), "member-1", session.SessionID, "item-1", 10); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if _, err := service.RecordCount(context.Background(), "member-1", session.SessionID, "item-2", 6); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	closed, err := service.CloseSession(context.Background(), "member-1", session.SessionID)
	if err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if closed.Status != entities.SessionClosed || closed.ClosedAt == nil {
		t.Fatalf("expected closed session with timestamp, got %+v", closed)
	}

	if got := store.ItemQuantity("item-1"); got != 10 {
		t.Fatalf("expected item-1 reconciled to 10, got %v", got)
	}
	if got := store.ItemQuantity("item-2"); got != 6 {
		t.Fatalf("expected item-2 reconciled to 6, got %v", got)
	}
	if got := store.ItemQuantity("item-uncounted"); got != 7 {
		t.Fatalf("uncounted items must keep their stock, got %v", got)
	}
}

func TestClosedSessionRejectsFurtherWrites(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	store.SeedItem(ports.ItemRef{ItemID: "item-1", SectionID: "section-1", Quantity: 12})

	session := openSession(t, service, "member-1", "org-1", "section-1")
	if _, err := service.CloseSession(context.Background(), "member-1", session.SessionID); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if _, err := service.RecordCount(context.Background(), "member-1", session.SessionID, "item-1", 5); !errors.Is(err, domainerrors.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed on record, got %v", err)
	}
	if _, err := service.CloseSession(context.Background(), "member-1", session.SessionID); !errors.Is(err, domainerrors.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed on double close, got %v", err)
	}
}

func TestSessionAccessRequiresMembership(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	session := openSession(t, service, "member-1", "org-1", "section-1")

	if _, _, err := service.GetSession(context.Background(), "outsider", session.SessionID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, _, err := service.GetSession(context.Background(), "member-1", "no-such-session"); !errors.Is(err, domainerrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := service.ListSessions(context.Background(), "outsider", "section-1"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on list, got %v", err)
	}
}

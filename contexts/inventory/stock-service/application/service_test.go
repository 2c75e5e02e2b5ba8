package application

import (
	"context"
	"errors"
	"testing"

	"tanavent/contexts/inventory/stock-service/adapters/memory"
	domainerrors "tanavent/contexts/inventory/stock-service/domain/errors"
	"tanavent/contexts/inventory/stock-service/ports"
)

func newService(store *memory.Store) Service {
	return Service{
		Repo:        store,
		Sections:    store,
		Memberships: store,
		Clock:       store,
		IDGenerator: store,
	}
}

func seedTenant(store *memory.Store, orgID, sectionID, userID string) {
	store.SeedSection(ports.SectionRef{SectionID: sectionID, OrganizationID: orgID})
	store.SeedMembership(orgID, userID)
}

func TestListItemsRequiresSectionID(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	if _, err := service.ListItems(context.Background(), "user-1", ""); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestListItemsUnknownSectionIsNotFound(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	if _, err := service.ListItems(context.Background(), "user-1", "no-such-section"); !errors.Is(err, domainerrors.ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestListItemsDeniesNonMember(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	if _, err := service.ListItems(context.Background(), "outsider", "section-1"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateItemAppliesDefaults(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	item, err := service.CreateItem(context.Background(), "member-1", ports.CreateItemInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "Ch. Margaux",
	})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if item.Vintage != nil {
		t.Fatalf("expected nil vintage by default, got %v", *item.Vintage)
	}
	if item.Quantity != 0 {
		t.Fatalf("expected zero quantity by default, got %v", item.Quantity)
	}
	if item.Unit != "pc" {
		t.Fatalf("expected default unit pc, got %q", item.Unit)
	}
}

func TestCreateItemRejectsBadPairingBeforeMembership(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	seedTenant(store, "org-2", "section-2", "member-2")

	// section-2 belongs to org-2; the caller is not a member of either pairing
	// side. The pairing failure must win over the membership failure.
	_, err := service.CreateItem(context.Background(), "outsider", ports.CreateItemInput{
		OrganizationID: "org-1",
		SectionID:      "section-2",
		Name:           "Misfiled",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for bad pairing, got %v", err)
	}

	// Correct pairing, still an outsider: now the membership check applies.
	_, err = service.CreateItem(context.Background(), "outsider", ports.CreateItemInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "Misfiled",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for valid pairing, got %v", err)
	}
}

func TestGetItemResolvesBeforeAuthorizing(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	seedTenant(store, "org-2", "section-2", "member-2")

	item, err := service.CreateItem(context.Background(), "member-2", ports.CreateItemInput{
		OrganizationID: "org-2",
		SectionID:      "section-2",
		Name:           "Ch. Margaux 2015",
	})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	// Unknown id reads as not-found regardless of who asks.
	if _, err := service.GetItem(context.Background(), "member-1", "no-such-item"); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	// A real id in a foreign organization reads as forbidden, not not-found.
	if _, err := service.GetItem(context.Background(), "member-1", item.ItemID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign item, got %v", err)
	}

	got, err := service.GetItem(context.Background(), "member-2", item.ItemID)
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if got.Name != "Ch. Margaux 2015" {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestUpdateItemDerivesOrganizationFromStoredRow(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	seedTenant(store, "org-2", "section-2", "member-2")

	item, err := service.CreateItem(context.Background(), "member-2", ports.CreateItemInput{
		OrganizationID: "org-2",
		SectionID:      "section-2",
		Name:           "Barolo",
	})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	// member-1 belongs to org-1 but the stored row says org-2; the check runs
	// against the row, so no request payload can widen access.
	quantity := 9.0
	err = service.UpdateItem(context.Background(), "member-1", item.ItemID, ports.ItemPatch{Quantity: &quantity})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, _, err := store.GetItem(context.Background(), item.ItemID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if got.Quantity != 0 {
		t.Fatalf("denied update must not mutate the row, got %+v", got)
	}
}

func TestUpdateItemIsPartial(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	vintage := 2015
	item, err := service.CreateItem(context.Background(), "member-1", ports.CreateItemInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "Barolo",
		Vintage:        &vintage,
		Quantity:       4,
		Unit:           "btl",
	})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	quantity := 7.0
	if err := service.UpdateItem(context.Background(), "member-1", item.ItemID, ports.ItemPatch{Quantity: &quantity}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _, err := store.GetItem(context.Background(), item.ItemID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if got.Quantity != 7 {
		t.Fatalf("expected updated quantity, got %v", got.Quantity)
	}
	if got.Name != "Barolo" || got.Unit != "btl" || got.Vintage == nil || *got.Vintage != 2015 {
		t.Fatalf("untouched fields must survive a partial update, got %+v", got)
	}
	if !got.UpdatedAt.After(item.UpdatedAt) && !got.UpdatedAt.Equal(item.UpdatedAt) {
		t.Fatalf("expected refreshed timestamp, got %v", got.UpdatedAt)
	}
}

func TestCreateItemRejectsNegativeQuantity(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	_, err := service.CreateItem(context.Background(), "member-1", ports.CreateItemInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "Barolo",
		Quantity:       -5,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}

	items, err := service.ListItems(context.Background(), "member-1", "section-1")
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("rejected create must not persist a row, got %+v", items)
	}
}

func TestUpdateItemRejectsNegativeQuantity(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	item, err := service.CreateItem(context.Background(), "member-1", ports.CreateItemInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "Barolo",
	})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	quantity := -1.0
	err = service.UpdateItem(context.Background(), "member-1", item.ItemID, ports.ItemPatch{Quantity: &quantity})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestDeleteItemRequiresMembership(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	item, err := service.CreateItem(context.Background(), "member-1", ports.CreateItemInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "Barolo",
	})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	if err := service.DeleteItem(context.Background(), "outsider", item.ItemID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := service.DeleteItem(context.Background(), "member-1", item.ItemID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := service.DeleteItem(context.Background(), "member-1", item.ItemID); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
}

package application

import (
	"context"
	"errors"
	"testing"

	"tanavent/contexts/identity-access/tenancy-service/adapters/memory"
	domainerrors "tanavent/contexts/identity-access/tenancy-service/domain/errors"
	"tanavent/contexts/identity-access/tenancy-service/ports"
)

func newService(store *memory.Store) Service {
	return Service{
		Repo:        store,
		Clock:       store,
		IDGenerator: store,
	}
}

func TestCreateOrganizationGrantsOwnerMembership(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	org, err := service.CreateOrganization(context.Background(), "user-1", "Trattoria Nora")
	if err != nil {
		t.Fatalf("create organization failed: %v", err)
	}
	if org.Plan != "free" {
		t.Fatalf("expected free plan, got %q", org.Plan)
	}

	if err := service.Authorize(context.Background(), "user-1", org.OrganizationID); err != nil {
		t.Fatalf("creator should be authorized: %v", err)
	}

	listed, err := service.ListOrganizations(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list organizations failed: %v", err)
	}
	if len(listed) != 1 || listed[0].OrganizationID != org.OrganizationID {
		t.Fatalf("expected the created organization in the member's list, got %+v", listed)
	}
}

func TestCreateOrganizationRequiresName(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	_, err := service.CreateOrganization(context.Background(), "user-1", "   ")
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestCreateOrganizationLeavesNoOrphanOnFailure(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	store.FailNextOwnerInsert(errors.New("member insert failed"))
	_, err := service.CreateOrganization(context.Background(), "user-1", "Bar Katsura")
	if err == nil {
		t.Fatal("expected creation to fail")
	}

	listed, err := service.ListOrganizations(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list organizations failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no organizations after failed creation, got %+v", listed)
	}

	next, err := service.CreateOrganization(context.Background(), "user-1", "Bar Katsura")
	if err != nil {
		t.Fatalf("retry after failure should succeed: %v", err)
	}
	if store.OrganizationExists(next.OrganizationID) != true {
		t.Fatal("expected retried organization to persist")
	}
}

func TestAuthorizeDeniesNonMember(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	org, err := service.CreateOrganization(context.Background(), "user-1", "Trattoria Nora")
	if err != nil {
		t.Fatalf("create organization failed: %v", err)
	}

	if err := service.Authorize(context.Background(), "user-2", org.OrganizationID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-member, got %v", err)
	}
}

func TestSectionOperationsRequireMembership(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	org, err := service.CreateOrganization(context.Background(), "user-1", "Trattoria Nora")
	if err != nil {
		t.Fatalf("create organization failed: %v", err)
	}

	if _, err := service.CreateSection(context.Background(), "intruder", org.OrganizationID, "Bar"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on create, got %v", err)
	}
	if _, err := service.ListSections(context.Background(), "intruder", org.OrganizationID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on list, got %v", err)
	}

	section, err := service.CreateSection(context.Background(), "user-1", org.OrganizationID, "Bar")
	if err != nil {
		t.Fatalf("member should create section: %v", err)
	}
	if section.OrganizationID != org.OrganizationID {
		t.Fatalf("section bound to wrong organization: %+v", section)
	}
}

func TestUpdateSectionIsScopedToOrganization(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	orgA, err := service.CreateOrganization(context.Background(), "alice", "Org A")
	if err != nil {
		t.Fatalf("create org A failed: %v", err)
	}
	orgB, err := service.CreateOrganization(context.Background(), "bob", "Org B")
	if err != nil {
		t.Fatalf("create org B failed: %v", err)
	}

	sectionB, err := service.CreateSection(context.Background(), "bob", orgB.OrganizationID, "Cellar")
	if err != nil {
		t.Fatalf("create section failed: %v", err)
	}

	// Alice is a member of A and guesses B's section id. The double-scoped
	// update must not touch the row.
	if err := service.UpdateSection(context.Background(), "alice", orgA.OrganizationID, sectionB.SectionID, "Hijacked"); err != nil {
		t.Fatalf("scoped update should not error: %v", err)
	}

	sections, err := service.ListSections(context.Background(), "bob", orgB.OrganizationID)
	if err != nil {
		t.Fatalf("list sections failed: %v", err)
	}
	if len(sections) != 1 || sections[0].Name != "Cellar" {
		t.Fatalf("section in org B must be untouched, got %+v", sections)
	}
}

func TestDeleteSectionIsScopedToOrganization(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	orgA, err := service.CreateOrganization(context.Background(), "alice", "Org A")
	if err != nil {
		t.Fatalf("create org A failed: %v", err)
	}
	orgB, err := service.CreateOrganization(context.Background(), "bob", "Org B")
	if err != nil {
		t.Fatalf("create org B failed: %v", err)
	}

	sectionB, err := service.CreateSection(context.Background(), "bob", orgB.OrganizationID, "Cellar")
	if err != nil {
		t.Fatalf("create section failed: %v", err)
	}

	if err := service.DeleteSection(context.Background(), "alice", orgA.OrganizationID, sectionB.SectionID); err != nil {
		t.Fatalf("scoped delete should not error: %v", err)
	}

	sections, err := service.ListSections(context.Background(), "bob", orgB.OrganizationID)
	if err != nil {
		t.Fatalf("list sections failed: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("section in org B must survive, got %+v", sections)
	}
}

func TestOwnerRoleRecordedOnCreation(t *testing.T) {
	if !ports.IsValidRole(ports.RoleOwner) || !ports.IsValidRole(ports.RoleAdmin) || !ports.IsValidRole(ports.RoleMember) {
		t.Fatal("expected canonical roles to validate")
	}
	if ports.IsValidRole("superuser") {
		t.Fatal("unexpected role accepted")
	}
}

package application

import (
	"context"
	"errors"
	"testing"

	"tanavent/contexts/inventory/catalog-service/adapters/memory"
	domainerrors "tanavent/contexts/inventory/catalog-service/domain/errors"
	"tanavent/contexts/inventory/catalog-service/ports"
)

func newService(store *memory.Store) Service {
	return Service{
		Repo:        store,
		Sections:    store,
		Memberships: store,
		IDGenerator: store,
	}
}

func seedTenant(store *memory.Store, orgID, sectionID, userID string) {
	store.SeedSection(ports.SectionRef{SectionID: sectionID, OrganizationID: orgID})
	store.SeedMembership(orgID, userID)
}

func TestListCategoriesGuardChain(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	if _, err := service.ListCategories(context.Background(), "member-1", ""); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := service.ListCategories(context.Background(), "member-1", "no-such-section"); !errors.Is(err, domainerrors.ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
	if _, err := service.ListCategories(context.Background(), "outsider", "section-1"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateCategoryValidatesPairingBeforeMembership(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	seedTenant(store, "org-2", "section-2", "member-2")

	_, err := service.CreateCategory(context.Background(), "outsider", ports.CreateCategoryInput{
		OrganizationID: "org-1",
		SectionID:      "section-2",
		Name:           "Red Wine",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for bad pairing, got %v", err)
	}

	_, err = service.CreateCategory(context.Background(), "outsider", ports.CreateCategoryInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "Red Wine",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for valid pairing, got %v", err)
	}
}

func TestCategoriesOrderedByDisplayOrder(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	for _, c := range []struct {
		name  string
		order int
	}{
		{"Spirits", 3},
		{"Red Wine", 1},
		{"White Wine", 2},
	} {
		_, err := service.CreateCategory(context.Background(), "member-1", ports.CreateCategoryInput{
			OrganizationID: "org-1",
			SectionID:      "section-1",
			Name:           c.name,
			DisplayOrder:   c.order,
		})
		if err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}

	categories, err := service.ListCategories(context.Background(), "member-1", "section-1")
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	if categories[0].Name != "Red Wine" || categories[2].Name != "Spirits" {
		t.Fatalf("unexpected ordering: %+v", categories)
	}
}

func TestUpdateCategoryDerivesOrganizationFromStoredRow(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")
	seedTenant(store, "org-2", "section-2", "member-2")

	category, err := service.CreateCategory(context.Background(), "member-2", ports.CreateCategoryInput{
		OrganizationID: "org-2",
		SectionID:      "section-2",
		Name:           "Meat",
	})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	name := "Hijacked"
	_, err = service.UpdateCategory(context.Background(), "member-1", category.CategoryID, ports.CategoryPatch{Name: &name})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	_, err = service.UpdateCategory(context.Background(), "member-1", "no-such-category", ports.CategoryPatch{Name: &name})
	if !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestSupplierLifecycle(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	seedTenant(store, "org-1", "section-1", "member-1")

	contact := "03-1234-5678"
	supplier, err := service.CreateSupplier(context.Background(), "member-1", ports.CreateSupplierInput{
		OrganizationID: "org-1",
		SectionID:      "section-1",
		Name:           "YY Liquor",
		ContactInfo:    &contact,
	})
	if err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}

	newContact := "orders@yyliquor.example"
	updated, err := service.UpdateSupplier(context.Background(), "member-1", supplier.SupplierID, ports.SupplierPatch{ContactInfo: &newContact})
	if err != nil {
		t.Fatalf("update supplier failed: %v", err)
	}
	if updated.Name != "YY Liquor" {
		t.Fatalf("partial update must keep the name, got %+v", updated)
	}
	if updated.ContactInfo == nil || *updated.ContactInfo != newContact {
		t.Fatalf("expected updated contact, got %+v", updated.ContactInfo)
	}

	if err := service.DeleteSupplier(context.Background(), "outsider", supplier.SupplierID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := service.DeleteSupplier(context.Background(), "member-1", supplier.SupplierID); err != nil {
		t.Fatalf("delete supplier failed: %v", err)
	}
	if err := service.DeleteSupplier(context.Background(), "member-1", supplier.SupplierID); !errors.Is(err, domainerrors.ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound after delete, got %v", err)
	}
}

package ports

import (
	"context"

	"tanavent/contexts/inventory/catalog-service/domain/entities"
)

type IDGenerator interface {
	NewID() string
}

// SectionRef is the slice of a section row needed for scoping decisions.
type SectionRef struct {
	SectionID      string
	OrganizationID string
}

// SectionReader resolves sections from the shared tenancy tables.
type SectionReader interface {
	GetSection(ctx context.Context, sectionID string) (SectionRef, bool, error)
	SectionBelongsTo(ctx context.Context, sectionID string, organizationID string) (bool, error)
}

// MembershipReader answers the tenancy predicate against the shared member table.
type MembershipReader interface {
	HasMembership(ctx context.Context, organizationID string, userID string) (bool, error)
}

type CreateCategoryInput struct {
	OrganizationID string
	SectionID      string
	Name           string
	DisplayOrder   int
}

type CategoryPatch struct {
	Name         *string
	DisplayOrder *int
}

type CreateSupplierInput struct {
	OrganizationID string
	SectionID      string
	Name           string
	ContactInfo    *string
}

type SupplierPatch struct {
	Name        *string
	ContactInfo *string
}

type Repository interface {
	ListCategoriesBySection(ctx context.Context, sectionID string) ([]entities.Category, error)
	GetCategory(ctx context.Context, categoryID string) (entities.Category, bool, error)
	CreateCategory(ctx context.Context, category entities.Category) error
	UpdateCategory(ctx context.Context, category entities.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error

	ListSuppliersBySection(ctx context.Context, sectionID string) ([]entities.Supplier, error)
	GetSupplier(ctx context.Context, supplierID string) (entities.Supplier, bool, error)
	CreateSupplier(ctx context.Context, supplier entities.Supplier) error
	UpdateSupplier(ctx context.Context, supplier entities.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

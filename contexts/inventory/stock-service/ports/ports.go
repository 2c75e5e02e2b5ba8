package ports

import (
	"context"
	"time"

	"tanavent/contexts/inventory/stock-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

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
	// SectionBelongsTo checks the (section, organization) pairing with one
	// double-scoped read.
	SectionBelongsTo(ctx context.Context, sectionID string, organizationID string) (bool, error)
}

// MembershipReader answers the tenancy predicate against the shared member table.
type MembershipReader interface {
	HasMembership(ctx context.Context, organizationID string, userID string) (bool, error)
}

type CreateItemInput struct {
	OrganizationID string
	SectionID      string
	Name           string
	Vintage        *int
	Quantity       float64
	Unit           string
}

// ItemPatch carries only the fields the caller supplied; nil means unchanged.
type ItemPatch struct {
	Name     *string
	Vintage  *int
	Quantity *float64
	Unit     *string
}

type Repository interface {
	ListItemsBySection(ctx context.Context, sectionID string) ([]entities.Item, error)
	GetItem(ctx context.Context, itemID string) (entities.Item, bool, error)
	CreateItem(ctx context.Context, item entities.Item) error
	UpdateItem(ctx context.Context, item entities.Item) error
	DeleteItem(ctx context.Context, itemID string) error
}

package ports

import (
	"context"
	"time"

	"tanavent/contexts/inventory/stocktake-service/domain/entities"
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
	SectionBelongsTo(ctx context.Context, sectionID string, organizationID string) (bool, error)
}

// MembershipReader answers the tenancy predicate against the shared member table.
type MembershipReader interface {
	HasMembership(ctx context.Context, organizationID string, userID string) (bool, error)
}

// ItemRef is the slice of an item row needed for counting: the section it
// lives in and its current theoretical stock.
type ItemRef struct {
	ItemID    string
	SectionID string
	Quantity  float64
}

// ItemReader resolves items from the shared stock table.
type ItemReader interface {
	GetItem(ctx context.Context, itemID string) (ItemRef, bool, error)
}

type OpenSessionInput struct {
	OrganizationID string
	SectionID      string
	Name           string
}

type Repository interface {
	CreateSession(ctx context.Context, session entities.Session) error
	ListSessionsBySection(ctx context.Context, sectionID string) ([]entities.Session, error)
	GetSession(ctx context.Context, sessionID string) (entities.Session, bool, error)

	ListRecords(ctx context.Context, sessionID string) ([]entities.Record, error)
	GetRecordForItem(ctx context.Context, sessionID string, itemID string) (entities.Record, bool, error)
	// UpsertRecord writes the count keyed by (session, item) in a single
	// conditional write; the expected snapshot is never overwritten.
	UpsertRecord(ctx context.Context, record entities.Record) error

	// CloseSession marks the session closed and overwrites each counted
	// item's quantity with its actual count, all in one transaction.
	CloseSession(ctx context.Context, session entities.Session, records []entities.Record) error
}

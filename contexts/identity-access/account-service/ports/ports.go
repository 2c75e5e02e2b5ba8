package ports

import (
	"context"
	"encoding/json"
	"time"

	"tanavent/contexts/identity-access/account-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type SaveStateInput struct {
	Language             string
	ActiveOrganizationID *string
	ActiveSectionID      *string
	LastViewState        json.RawMessage
}

// Repository persists users and their preference rows.
type Repository interface {
	GetUser(ctx context.Context, userID string) (entities.User, bool, error)
	// CreateUserIfAbsent is a single conditional write (insert, do nothing on
	// conflict) so the lazy stub-user creation cannot race with itself.
	CreateUserIfAbsent(ctx context.Context, user entities.User) error
	UpdateDisplayName(ctx context.Context, userID string, displayName string, now time.Time) error

	GetPreference(ctx context.Context, userID string) (entities.Preference, bool, error)
	// UpsertPreference inserts or overwrites the row keyed by user id in a
	// single conditional write.
	UpsertPreference(ctx context.Context, preference entities.Preference) error
}

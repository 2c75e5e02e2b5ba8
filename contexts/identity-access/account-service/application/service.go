package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tanavent/contexts/identity-access/account-service/domain/entities"
	domainerrors "tanavent/contexts/identity-access/account-service/domain/errors"
	"tanavent/contexts/identity-access/account-service/ports"
)

// Service owns user records and per-user preference state. Every operation is
// keyed by the authenticated caller's id; there is no cross-user access.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// EnsureUser registers the caller on first login. Returns true when a row was
// created, false when the caller already existed.
func (s Service) EnsureUser(ctx context.Context, callerID string, email string) (bool, error) {
	_, found, err := s.Repo.GetUser(ctx, callerID)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}

	now := s.now()
	user := entities.User{
		UserID:    callerID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateUserIfAbsent(ctx, user); err != nil {
		return false, err
	}

	s.logger().InfoContext(ctx, "account_user_registered",
		slog.String("module", "account"),
		slog.String("user_id", callerID),
	)
	return true, nil
}

func (s Service) UpdateProfile(ctx context.Context, callerID string, displayName string) error {
	trimmed := strings.TrimSpace(displayName)
	if trimmed == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Repo.UpdateDisplayName(ctx, callerID, trimmed, s.now())
}

// GetState returns the caller's stored preference row, or the default state
// when none exists yet. The default is never persisted by a read.
func (s Service) GetState(ctx context.Context, callerID string) (entities.Preference, error) {
	preference, found, err := s.Repo.GetPreference(ctx, callerID)
	if err != nil {
		return entities.Preference{}, err
	}
	if !found {
		fallback := entities.DefaultPreference()
		fallback.UserID = callerID
		return fallback, nil
	}
	return preference, nil
}

// SaveState upserts the caller's preference row, then lazily creates a stub
// user so a state write never dangles without an owning user record.
func (s Service) SaveState(ctx context.Context, callerID string, email string, input ports.SaveStateInput) error {
	now := s.now()
	preference := entities.Preference{
		UserID:               callerID,
		Language:             input.Language,
		ActiveOrganizationID: input.ActiveOrganizationID,
		ActiveSectionID:      input.ActiveSectionID,
		LastViewState:        input.LastViewState,
		UpdatedAt:            now,
	}
	if preference.Language == "" {
		preference.Language = "ja"
	}
	if len(preference.LastViewState) == 0 {
		preference.LastViewState = entities.DefaultPreference().LastViewState
	}

	if err := s.Repo.UpsertPreference(ctx, preference); err != nil {
		return err
	}

	stub := entities.User{
		UserID:      callerID,
		Email:       email,
		DisplayName: "New User",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.Repo.CreateUserIfAbsent(ctx, stub)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

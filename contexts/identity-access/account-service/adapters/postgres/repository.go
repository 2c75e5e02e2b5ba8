package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tanavent/contexts/identity-access/account-service/domain/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetUser(ctx context.Context, userID string) (entities.User, bool, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, false, nil
		}
		return entities.User{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateUserIfAbsent(ctx context.Context, user entities.User) error {
	row := userModel{
		ID:          user.UserID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt.UTC(),
		UpdatedAt:   user.UpdatedAt.UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&row).
		Error
}

func (r *Repository) UpdateDisplayName(ctx context.Context, userID string, displayName string, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"display_name": displayName,
			"updated_at":   now.UTC(),
		}).
		Error
}

func (r *Repository) GetPreference(ctx context.Context, userID string) (entities.Preference, bool, error) {
	var row preferenceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Preference{}, false, nil
		}
		return entities.Preference{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) UpsertPreference(ctx context.Context, preference entities.Preference) error {
	row := preferenceModel{
		UserID:               preference.UserID,
		Language:             preference.Language,
		ActiveOrganizationID: preference.ActiveOrganizationID,
		ActiveSectionID:      preference.ActiveSectionID,
		LastViewState:        []byte(preference.LastViewState),
		UpdatedAt:            preference.UpdatedAt.UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"language", "active_organization_id", "active_section_id", "last_view_state", "updated_at"}),
		}).
		Create(&row).
		Error
}

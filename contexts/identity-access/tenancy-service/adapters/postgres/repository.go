package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"tanavent/contexts/identity-access/tenancy-service/domain/entities"
	domainerrors "tanavent/contexts/identity-access/tenancy-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
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

func (r *Repository) ListOrganizationsByUser(ctx context.Context, userID string) ([]entities.Organization, error) {
	var rows []organizationModel
	err := r.db.WithContext(ctx).
		Joins("JOIN member ON member.organization_id = organization.id").
		Where("member.user_id = ?", userID).
		Order("organization.created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Organization, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// CreateOrganizationWithOwner writes the organization and its owner
// membership in one transaction so no orphan organization can persist.
func (r *Repository) CreateOrganizationWithOwner(ctx context.Context, org entities.Organization, owner entities.Member) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orgRow := organizationModel{
			ID:        org.OrganizationID,
			Name:      org.Name,
			Plan:      org.Plan,
			CreatedAt: org.CreatedAt.UTC(),
		}
		if err := tx.Create(&orgRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidRequest
			}
			return err
		}

		memberRow := memberModel{
			ID:             owner.MemberID,
			OrganizationID: owner.OrganizationID,
			UserID:         owner.UserID,
			Role:           owner.Role,
			JoinedAt:       owner.JoinedAt.UTC(),
		}
		if err := tx.Create(&memberRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidRequest
			}
			return err
		}
		return nil
	})
}

func (r *Repository) HasMembership(ctx context.Context, organizationID string, userID string) (bool, error) {
	var row memberModel
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) ListSections(ctx context.Context, organizationID string) ([]entities.Section, error) {
	var rows []sectionModel
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Section, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateSection(ctx context.Context, section entities.Section) error {
	row := sectionModel{
		ID:             section.SectionID,
		OrganizationID: section.OrganizationID,
		Name:           section.Name,
		Settings:       []byte(section.Settings),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateSection(ctx context.Context, organizationID string, sectionID string, name string) error {
	return r.db.WithContext(ctx).
		Model(&sectionModel{}).
		Where("id = ? AND organization_id = ?", sectionID, organizationID).
		Update("name", name).
		Error
}

func (r *Repository) DeleteSection(ctx context.Context, organizationID string, sectionID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", sectionID, organizationID).
		Delete(&sectionModel{}).
		Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

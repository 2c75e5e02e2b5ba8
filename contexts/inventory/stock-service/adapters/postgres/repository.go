package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"tanavent/contexts/inventory/stock-service/domain/entities"
	"tanavent/contexts/inventory/stock-service/ports"

	"gorm.io/gorm"
)

// Repository implements the item store plus the section/membership readers
// over the shared tenancy tables.
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

func (r *Repository) ListItemsBySection(ctx context.Context, sectionID string) ([]entities.Item, error) {
	var rows []itemModel
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetItem(ctx context.Context, itemID string) (entities.Item, bool, error) {
	var row itemModel
	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Item{}, false, nil
		}
		return entities.Item{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateItem(ctx context.Context, item entities.Item) error {
	row := fromEntity(item)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateItem(ctx context.Context, item entities.Item) error {
	row := fromEntity(item)
	return r.db.WithContext(ctx).
		Model(&itemModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"name":       row.Name,
			"vintage":    row.Vintage,
			"quantity":   row.Quantity,
			"unit":       row.Unit,
			"updated_at": row.UpdatedAt,
		}).
		Error
}

func (r *Repository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&itemModel{}).
		Error
}

func (r *Repository) GetSection(ctx context.Context, sectionID string) (ports.SectionRef, bool, error) {
	var row sectionRow
	err := r.db.WithContext(ctx).
		Where("id = ?", sectionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SectionRef{}, false, nil
		}
		return ports.SectionRef{}, false, err
	}
	return ports.SectionRef{SectionID: row.ID, OrganizationID: row.OrganizationID}, true, nil
}

func (r *Repository) SectionBelongsTo(ctx context.Context, sectionID string, organizationID string) (bool, error) {
	var row sectionRow
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", sectionID, organizationID).
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

func (r *Repository) HasMembership(ctx context.Context, organizationID string, userID string) (bool, error) {
	var row memberRow
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

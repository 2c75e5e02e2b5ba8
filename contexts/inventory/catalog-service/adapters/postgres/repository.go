package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"tanavent/contexts/inventory/catalog-service/domain/entities"
	"tanavent/contexts/inventory/catalog-service/ports"

	"gorm.io/gorm"
)

// Repository implements the catalog store plus the section/membership readers
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

func (r *Repository) ListCategoriesBySection(ctx context.Context, sectionID string) ([]entities.Category, error) {
	var rows []categoryModel
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("display_order ASC, name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	categories := make([]entities.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toEntity())
	}
	return categories, nil
}

func (r *Repository) GetCategory(ctx context.Context, categoryID string) (entities.Category, bool, error) {
	var row categoryModel
	err := r.db.WithContext(ctx).
		Where("id = ?", categoryID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Category{}, false, nil
		}
		return entities.Category{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category entities.Category) error {
	row := categoryModel{
		ID:             category.CategoryID,
		OrganizationID: category.OrganizationID,
		SectionID:      category.SectionID,
		Name:           category.Name,
		DisplayOrder:   category.DisplayOrder,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateCategory(ctx context.Context, category entities.Category) error {
	return r.db.WithContext(ctx).
		Model(&categoryModel{}).
		Where("id = ?", category.CategoryID).
		Updates(map[string]any{
			"name":          category.Name,
			"display_order": category.DisplayOrder,
		}).
		Error
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", categoryID).
		Delete(&categoryModel{}).
		Error
}

func (r *Repository) ListSuppliersBySection(ctx context.Context, sectionID string) ([]entities.Supplier, error) {
	var rows []supplierModel
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	suppliers := make([]entities.Supplier, 0, len(rows))
	for _, row := range rows {
		suppliers = append(suppliers, row.toEntity())
	}
	return suppliers, nil
}

func (r *Repository) GetSupplier(ctx context.Context, supplierID string) (entities.Supplier, bool, error) {
	var row supplierModel
	err := r.db.WithContext(ctx).
		Where("id = ?", supplierID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Supplier{}, false, nil
		}
		return entities.Supplier{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateSupplier(ctx context.Context, supplier entities.Supplier) error {
	row := supplierModel{
		ID:             supplier.SupplierID,
		OrganizationID: supplier.OrganizationID,
		SectionID:      supplier.SectionID,
		Name:           supplier.Name,
		ContactInfo:    supplier.ContactInfo,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateSupplier(ctx context.Context, supplier entities.Supplier) error {
	return r.db.WithContext(ctx).
		Model(&supplierModel{}).
		Where("id = ?", supplier.SupplierID).
		Updates(map[string]any{
			"name":         supplier.Name,
			"contact_info": supplier.ContactInfo,
		}).
		Error
}

func (r *Repository) DeleteSupplier(ctx context.Context, supplierID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", supplierID).
		Delete(&supplierModel{}).
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

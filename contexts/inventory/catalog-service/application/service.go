package application

import (
	"context"
	"log/slog"
	"strings"

	"tanavent/contexts/inventory/catalog-service/domain/entities"
	domainerrors "tanavent/contexts/inventory/catalog-service/domain/errors"
	"tanavent/contexts/inventory/catalog-service/ports"
)

// Service implements category and supplier master data. Guard chains match
// the item operations: section resolved before membership on listing,
// pairing validated before membership on creation, organization re-derived
// from the stored row on mutation.
type Service struct {
	Repo        ports.Repository
	Sections    ports.SectionReader
	Memberships ports.MembershipReader
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) ListCategories(ctx context.Context, callerID string, sectionID string) ([]entities.Category, error) {
	if err := s.resolveSection(ctx, callerID, sectionID); err != nil {
		return nil, err
	}
	return s.Repo.ListCategoriesBySection(ctx, sectionID)
}

func (s Service) CreateCategory(ctx context.Context, callerID string, input ports.CreateCategoryInput) (entities.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.OrganizationID == "" || input.SectionID == "" {
		return entities.Category{}, domainerrors.ErrInvalidRequest
	}
	if err := s.checkPairingAndMembership(ctx, callerID, input.SectionID, input.OrganizationID); err != nil {
		return entities.Category{}, err
	}

	category := entities.Category{
		CategoryID:     s.IDGenerator.NewID(),
		OrganizationID: input.OrganizationID,
		SectionID:      input.SectionID,
		Name:           name,
		DisplayOrder:   input.DisplayOrder,
	}
	if err := s.Repo.CreateCategory(ctx, category); err != nil {
		return entities.Category{}, err
	}
	return category, nil
}

func (s Service) UpdateCategory(ctx context.Context, callerID string, categoryID string, patch ports.CategoryPatch) (entities.Category, error) {
	category, found, err := s.Repo.GetCategory(ctx, categoryID)
	if err != nil {
		return entities.Category{}, err
	}
	if !found {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	if err := s.authorize(ctx, callerID, category.OrganizationID); err != nil {
		return entities.Category{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Category{}, domainerrors.ErrInvalidRequest
		}
		category.Name = name
	}
	if patch.DisplayOrder != nil {
		category.DisplayOrder = *patch.DisplayOrder
	}

	if err := s.Repo.UpdateCategory(ctx, category); err != nil {
		return entities.Category{}, err
	}
	return category, nil
}

func (s Service) DeleteCategory(ctx context.Context, callerID string, categoryID string) error {
	category, found, err := s.Repo.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrCategoryNotFound
	}
	if err := s.authorize(ctx, callerID, category.OrganizationID); err != nil {
		return err
	}
	return s.Repo.DeleteCategory(ctx, categoryID)
}

func (s Service) ListSuppliers(ctx context.Context, callerID string, sectionID string) ([]entities.Supplier, error) {
	if err := s.resolveSection(ctx, callerID, sectionID); err != nil {
		return nil, err
	}
	return s.Repo.ListSuppliersBySection(ctx, sectionID)
}

func (s Service) CreateSupplier(ctx context.Context, callerID string, input ports.CreateSupplierInput) (entities.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.OrganizationID == "" || input.SectionID == "" {
		return entities.Supplier{}, domainerrors.ErrInvalidRequest
	}
	if err := s.checkPairingAndMembership(ctx, callerID, input.SectionID, input.OrganizationID); err != nil {
		return entities.Supplier{}, err
	}

	supplier := entities.Supplier{
		SupplierID:     s.IDGenerator.NewID(),
		OrganizationID: input.OrganizationID,
		SectionID:      input.SectionID,
		Name:           name,
		ContactInfo:    input.ContactInfo,
	}
	if err := s.Repo.CreateSupplier(ctx, supplier); err != nil {
		return entities.Supplier{}, err
	}
	return supplier, nil
}

func (s Service) UpdateSupplier(ctx context.Context, callerID string, supplierID string, patch ports.SupplierPatch) (entities.Supplier, error) {
	supplier, found, err := s.Repo.GetSupplier(ctx, supplierID)
	if err != nil {
		return entities.Supplier{}, err
	}
	if !found {
		return entities.Supplier{}, domainerrors.ErrSupplierNotFound
	}
	if err := s.authorize(ctx, callerID, supplier.OrganizationID); err != nil {
		return entities.Supplier{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Supplier{}, domainerrors.ErrInvalidRequest
		}
		supplier.Name = name
	}
	if patch.ContactInfo != nil {
		supplier.ContactInfo = patch.ContactInfo
	}

	if err := s.Repo.UpdateSupplier(ctx, supplier); err != nil {
		return entities.Supplier{}, err
	}
	return supplier, nil
}

func (s Service) DeleteSupplier(ctx context.Context, callerID string, supplierID string) error {
	supplier, found, err := s.Repo.GetSupplier(ctx, supplierID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrSupplierNotFound
	}
	if err := s.authorize(ctx, callerID, supplier.OrganizationID); err != nil {
		return err
	}
	return s.Repo.DeleteSupplier(ctx, supplierID)
}

func (s Service) resolveSection(ctx context.Context, callerID string, sectionID string) error {
	if sectionID == "" {
		return domainerrors.ErrInvalidRequest
	}
	section, found, err := s.Sections.GetSection(ctx, sectionID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrSectionNotFound
	}
	return s.authorize(ctx, callerID, section.OrganizationID)
}

func (s Service) checkPairingAndMembership(ctx context.Context, callerID string, sectionID string, organizationID string) error {
	paired, err := s.Sections.SectionBelongsTo(ctx, sectionID, organizationID)
	if err != nil {
		return err
	}
	if !paired {
		return domainerrors.ErrInvalidRequest
	}
	return s.authorize(ctx, callerID, organizationID)
}

func (s Service) authorize(ctx context.Context, callerID string, organizationID string) error {
	ok, err := s.Memberships.HasMembership(ctx, organizationID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrForbidden
	}
	return nil
}

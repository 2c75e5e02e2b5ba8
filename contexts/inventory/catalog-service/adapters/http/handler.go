package httpadapter

import (
	"context"
	"log/slog"

	"tanavent/contexts/inventory/catalog-service/application"
	"tanavent/contexts/inventory/catalog-service/domain/entities"
	"tanavent/contexts/inventory/catalog-service/ports"
	httptransport "tanavent/contexts/inventory/catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListCategoriesHandler(ctx context.Context, callerID string, sectionID string) (httptransport.ListCategoriesResponse, error) {
	categories, err := h.Service.ListCategories(ctx, callerID, sectionID)
	if err != nil {
		return httptransport.ListCategoriesResponse{}, err
	}

	resp := httptransport.ListCategoriesResponse{Categories: make([]httptransport.CategoryResponse, 0, len(categories))}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(category))
	}
	return resp, nil
}

func (h Handler) CreateCategoryHandler(
	ctx context.Context,
	callerID string,
	req httptransport.CreateCategoryRequest,
) (httptransport.CategoryResponse, error) {
	category, err := h.Service.CreateCategory(ctx, callerID, ports.CreateCategoryInput{
		OrganizationID: req.OrganizationID,
		SectionID:      req.SectionID,
		Name:           req.Name,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		return httptransport.CategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

func (h Handler) UpdateCategoryHandler(
	ctx context.Context,
	callerID string,
	categoryID string,
	req httptransport.UpdateCategoryRequest,
) (httptransport.CategoryResponse, error) {
	category, err := h.Service.UpdateCategory(ctx, callerID, categoryID, ports.CategoryPatch{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return httptransport.CategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

func (h Handler) DeleteCategoryHandler(ctx context.Context, callerID string, categoryID string) (httptransport.MutationResponse, error) {
	if err := h.Service.DeleteCategory(ctx, callerID, categoryID); err != nil {
		return httptransport.MutationResponse{}, err
	}
	return httptransport.MutationResponse{Success: true, ID: categoryID}, nil
}

func (h Handler) ListSuppliersHandler(ctx context.Context, callerID string, sectionID string) (httptransport.ListSuppliersResponse, error) {
	suppliers, err := h.Service.ListSuppliers(ctx, callerID, sectionID)
	if err != nil {
		return httptransport.ListSuppliersResponse{}, err
	}

	resp := httptransport.ListSuppliersResponse{Suppliers: make([]httptransport.SupplierResponse, 0, len(suppliers))}
	for _, supplier := range suppliers {
		resp.Suppliers = append(resp.Suppliers, toSupplierResponse(supplier))
	}
	return resp, nil
}

func (h Handler) CreateSupplierHandler(
	ctx context.Context,
	callerID string,
	req httptransport.CreateSupplierRequest,
) (httptransport.SupplierResponse, error) {
	supplier, err := h.Service.CreateSupplier(ctx, callerID, ports.CreateSupplierInput{
		OrganizationID: req.OrganizationID,
		SectionID:      req.SectionID,
		Name:           req.Name,
		ContactInfo:    req.ContactInfo,
	})
	if err != nil {
		return httptransport.SupplierResponse{}, err
	}
	return toSupplierResponse(supplier), nil
}

func (h Handler) UpdateSupplierHandler(
	ctx context.Context,
	callerID string,
	supplierID string,
	req httptransport.UpdateSupplierRequest,
) (httptransport.SupplierResponse, error) {
	supplier, err := h.Service.UpdateSupplier(ctx, callerID, supplierID, ports.SupplierPatch{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		return httptransport.SupplierResponse{}, err
	}
	return toSupplierResponse(supplier), nil
}

func (h Handler) DeleteSupplierHandler(ctx context.Context, callerID string, supplierID string) (httptransport.MutationResponse, error) {
	if err := h.Service.DeleteSupplier(ctx, callerID, supplierID); err != nil {
		return httptransport.MutationResponse{}, err
	}
	return httptransport.MutationResponse{Success: true, ID: supplierID}, nil
}

func toCategoryResponse(category entities.Category) httptransport.CategoryResponse {
	return httptransport.CategoryResponse{
		ID:             category.CategoryID,
		OrganizationID: category.OrganizationID,
		SectionID:      category.SectionID,
		Name:           category.Name,
		DisplayOrder:   category.DisplayOrder,
	}
}

func toSupplierResponse(supplier entities.Supplier) httptransport.SupplierResponse {
	return httptransport.SupplierResponse{
		ID:             supplier.SupplierID,
		OrganizationID: supplier.OrganizationID,
		SectionID:      supplier.SectionID,
		Name:           supplier.Name,
		ContactInfo:    supplier.ContactInfo,
	}
}

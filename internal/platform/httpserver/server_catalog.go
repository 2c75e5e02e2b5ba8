package httpserver

import (
	"errors"
	"net/http"

	catalogerrors "tanavent/contexts/inventory/catalog-service/domain/errors"
	cataloghttp "tanavent/contexts/inventory/catalog-service/transport/http"
)

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{Code: code, Message: message})
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrSectionNotFound):
		writeCatalogError(w, http.StatusNotFound, "section_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrCategoryNotFound):
		writeCatalogError(w, http.StatusNotFound, "category_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrSupplierNotFound):
		writeCatalogError(w, http.StatusNotFound, "supplier_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrForbidden):
		writeCatalogError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidRequest):
		writeCatalogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeCatalogError)
	if !ok {
		return
	}
	sectionID := r.URL.Query().Get("sectionId")
	resp, err := s.catalog.Handler.ListCategoriesHandler(r.Context(), caller.SubjectID, sectionID)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeCatalogError)
	if !ok {
		return
	}
	var req cataloghttp.CreateCategoryRequest
	if !s.decodeJSON(w, r, &req, writeCatalogError) {
		return
	}
	resp, err := s.catalog.Handler.CreateCategoryHandler(r.Context(), caller.SubjectID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeCatalogError)
	if !ok {
		return
	}
	var req cataloghttp.UpdateCategoryRequest
	if !s.decodeJSON(w, r, &req, writeCatalogError) {
		return
	}
	categoryID := r.PathValue("category_id")
	resp, err := s.catalog.Handler.UpdateCategoryHandler(r.Context(), caller.SubjectID, categoryID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeCatalogError)
	if !ok {
		return
	}
	categoryID := r.PathValue("category_id")
	resp, err := s.catalog.Handler.DeleteCategoryHandler(r.Context(), caller.SubjectID, categoryID)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeCatalogError)
	if !ok {
		return
	}
	sectionID := r.URL.Query().Get("sectionId")
	resp, err := s.catalog.Handler.ListSuppliersHandler(r.Context(), caller.SubjectID, sectionID)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeCatalogError)
	if !ok {
		return
	}
	var req cataloghttp.CreateSupplierRequest
	if !s.decodeJSON(w, r, &req, writeCatalogError) {
		return
	}
	resp, err := s.catalog.Handler.CreateSupplierHandler(r.Context(), caller.SubjectID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateSupplier(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeCatalogError)
	if !ok {
		return
	}
	var req cataloghttp.UpdateSupplierRequest
	if !s.decodeJSON(w, r, &req, writeCatalogError) {
		return
	}
	supplierID := r.PathValue("supplier_id")
	resp, err := s.catalog.Handler.UpdateSupplierHandler(r.Context(), caller.SubjectID, supplierID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeCatalogError)
	if !ok {
		return
	}
	supplierID := r.PathValue("supplier_id")
	resp, err := s.catalog.Handler.DeleteSupplierHandler(r.Context(), caller.SubjectID, supplierID)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

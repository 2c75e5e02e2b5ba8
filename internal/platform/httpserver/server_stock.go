package httpserver

import (
	"errors"
	"net/http"

	stockerrors "tanavent/contexts/inventory/stock-service/domain/errors"
	stockhttp "tanavent/contexts/inventory/stock-service/transport/http"
)

func writeStockError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, stockhttp.ErrorResponse{Code: code, Message: message})
}

func writeStockDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stockerrors.ErrSectionNotFound):
		writeStockError(w, http.StatusNotFound, "section_not_found", err.Error())
	case errors.Is(err, stockerrors.ErrItemNotFound):
		writeStockError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, stockerrors.ErrForbidden):
		writeStockError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, stockerrors.ErrInvalidRequest):
		writeStockError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeStockError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStockError)
	if !ok {
		return
	}
	sectionID := r.URL.Query().Get("sectionId")
	resp, err := s.stock.Handler.ListItemsHandler(r.Context(), caller.SubjectID, sectionID)
	if err != nil {
		writeStockDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStockError)
	if !ok {
		return
	}
	itemID := r.PathValue("item_id")
	resp, err := s.stock.Handler.GetItemHandler(r.Context(), caller.SubjectID, itemID)
	if err != nil {
		writeStockDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStockError)
	if !ok {
		return
	}
	var req stockhttp.CreateItemRequest
	if !s.decodeJSON(w, r, &req, writeStockError) {
		return
	}
	resp, err := s.stock.Handler.CreateItemHandler(r.Context(), caller.SubjectID, req)
	if err != nil {
		writeStockDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStockError)
	if !ok {
		return
	}
	var req stockhttp.UpdateItemRequest
	if !s.decodeJSON(w, r, &req, writeStockError) {
		return
	}
	itemID := r.PathValue("item_id")
	resp, err := s.stock.Handler.UpdateItemHandler(r.Context(), caller.SubjectID, itemID, req)
	if err != nil {
		writeStockDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStockError)
	if !ok {
		return
	}
	itemID := r.PathValue("item_id")
	resp, err := s.stock.Handler.DeleteItemHandler(r.Context(), caller.SubjectID, itemID)
	if err != nil {
		writeStockDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

package httpserver

import (
	"errors"
	"net/http"

	stocktakeerrors "tanavent/contexts/inventory/stocktake-service/domain/errors"
	stocktakehttp "tanavent/contexts/inventory/stocktake-service/transport/http"
)

func writeStocktakeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, stocktakehttp.ErrorResponse{Code: code, Message: message})
}

func writeStocktakeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stocktakeerrors.ErrSectionNotFound):
		writeStocktakeError(w, http.StatusNotFound, "section_not_found", err.Error())
	case errors.Is(err, stocktakeerrors.ErrSessionNotFound):
		writeStocktakeError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, stocktakeerrors.ErrSessionClosed):
		writeStocktakeError(w, http.StatusConflict, "session_closed", err.Error())
	case errors.Is(err, stocktakeerrors.ErrForbidden):
		writeStocktakeError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, stocktakeerrors.ErrItemNotInSection),
		errors.Is(err, stocktakeerrors.ErrInvalidRequest):
		writeStocktakeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeStocktakeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListStocktakeSessions(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStocktakeError)
	if !ok {
		return
	}
	sectionID := r.URL.Query().Get("sectionId")
	resp, err := s.stocktake.Handler.ListSessionsHandler(r.Context(), caller.SubjectID, sectionID)
	if err != nil {
		writeStocktakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOpenStocktakeSession(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStocktakeError)
	if !ok {
		return
	}
	var req stocktakehttp.OpenSessionRequest
	if !s.decodeJSON(w, r, &req, writeStocktakeError) {
		return
	}
	resp, err := s.stocktake.Handler.OpenSessionHandler(r.Context(), caller.SubjectID, req)
	if err != nil {
		writeStocktakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetStocktakeSession(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStocktakeError)
	if !ok {
		return
	}
	sessionID := r.PathValue("session_id")
	resp, err := s.stocktake.Handler.GetSessionHandler(r.Context(), caller.SubjectID, sessionID)
	if err != nil {
		writeStocktakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecordStocktakeCount(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStocktakeError)
	if !ok {
		return
	}
	var req stocktakehttp.RecordCountRequest
	if !s.decodeJSON(w, r, &req, writeStocktakeError) {
		return
	}
	sessionID := r.PathValue("session_id")
	resp, err := s.stocktake.Handler.RecordCountHandler(r.Context(), caller.SubjectID, sessionID, req)
	if err != nil {
		writeStocktakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCloseStocktakeSession(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeStocktakeError)
	if !ok {
		return
	}
	sessionID := r.PathValue("session_id")
	resp, err := s.stocktake.Handler.CloseSessionHandler(r.Context(), caller.SubjectID, sessionID)
	if err != nil {
		writeStocktakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

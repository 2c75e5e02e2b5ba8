package httpserver

import (
	"errors"
	"net/http"

	accounterrors "tanavent/contexts/identity-access/account-service/domain/errors"
	accounthttp "tanavent/contexts/identity-access/account-service/transport/http"
)

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrInvalidRequest):
		writeAccountError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeAccountError)
	if !ok {
		return
	}
	resp, created, err := s.account.Handler.RegisterUserHandler(r.Context(), caller.SubjectID, caller.Email)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeAccountError)
	if !ok {
		return
	}
	var req accounthttp.UpdateProfileRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.account.Handler.UpdateProfileHandler(r.Context(), caller.SubjectID, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeAccountError)
	if !ok {
		return
	}
	resp, err := s.account.Handler.GetStateHandler(r.Context(), caller.SubjectID)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSaveState(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeAccountError)
	if !ok {
		return
	}
	var req accounthttp.SaveStateRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.account.Handler.SaveStateHandler(r.Context(), caller.SubjectID, caller.Email, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

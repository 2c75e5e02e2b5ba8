package httpserver

import (
	"errors"
	"net/http"

	tenancyerrors "tanavent/contexts/identity-access/tenancy-service/domain/errors"
	tenancyhttp "tanavent/contexts/identity-access/tenancy-service/transport/http"
)

func writeTenancyError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, tenancyhttp.ErrorResponse{Code: code, Message: message})
}

func writeTenancyDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tenancyerrors.ErrInvalidRequest):
		writeTenancyError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, tenancyerrors.ErrForbidden):
		writeTenancyError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeTenancyError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeTenancyError)
	if !ok {
		return
	}
	resp, err := s.tenancy.Handler.ListOrganizationsHandler(r.Context(), caller.SubjectID)
	if err != nil {
		writeTenancyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeTenancyError)
	if !ok {
		return
	}
	var req tenancyhttp.CreateOrganizationRequest
	if !s.decodeJSON(w, r, &req, writeTenancyError) {
		return
	}
	resp, err := s.tenancy.Handler.CreateOrganizationHandler(r.Context(), caller.SubjectID, req)
	if err != nil {
		writeTenancyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeTenancyError)
	if !ok {
		return
	}
	orgID := r.PathValue("org_id")
	resp, err := s.tenancy.Handler.ListSectionsHandler(r.Context(), caller.SubjectID, orgID)
	if err != nil {
		writeTenancyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSection(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeTenancyError)
	if !ok {
		return
	}
	var req tenancyhttp.CreateSectionRequest
	if !s.decodeJSON(w, r, &req, writeTenancyError) {
		return
	}
	orgID := r.PathValue("org_id")
	resp, err := s.tenancy.Handler.CreateSectionHandler(r.Context(), caller.SubjectID, orgID, req)
	if err != nil {
		writeTenancyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeTenancyError)
	if !ok {
		return
	}
	var req tenancyhttp.UpdateSectionRequest
	if !s.decodeJSON(w, r, &req, writeTenancyError) {
		return
	}
	orgID := r.PathValue("org_id")
	sectionID := r.PathValue("section_id")
	resp, err := s.tenancy.Handler.UpdateSectionHandler(r.Context(), caller.SubjectID, orgID, sectionID, req)
	if err != nil {
		writeTenancyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r, writeTenancyError)
	if !ok {
		return
	}
	orgID := r.PathValue("org_id")
	sectionID := r.PathValue("section_id")
	resp, err := s.tenancy.Handler.DeleteSectionHandler(r.Context(), caller.SubjectID, orgID, sectionID)
	if err != nil {
		writeTenancyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

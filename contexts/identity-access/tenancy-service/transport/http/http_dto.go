package http

import "encoding/json"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OrganizationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Plan      string `json:"plan"`
	CreatedAt string `json:"createdAt"`
}

type CreateOrganizationRequest struct {
	Name string `json:"name"`
}

type CreateOrganizationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SectionResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	Name           string          `json:"name"`
	Settings       json.RawMessage `json:"settings"`
}

type CreateSectionRequest struct {
	Name string `json:"name"`
}

type UpdateSectionRequest struct {
	Name string `json:"name"`
}

type SectionNameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DeleteSectionResponse struct {
	Success bool `json:"success"`
}

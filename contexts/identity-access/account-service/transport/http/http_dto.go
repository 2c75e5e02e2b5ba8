package http

import "encoding/json"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterUserResponse struct {
	Message string `json:"message"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// StateResponse mirrors the preference row. UserID and UpdatedAt are present
// only when a stored row backs the response; the default state omits them.
type StateResponse struct {
	UserID               string          `json:"userId,omitempty"`
	ActiveOrganizationID *string         `json:"activeOrganizationId"`
	ActiveSectionID      *string         `json:"activeSectionId"`
	Language             string          `json:"language"`
	LastViewState        json.RawMessage `json:"lastViewState"`
	UpdatedAt            string          `json:"updatedAt,omitempty"`
}

type SaveStateRequest struct {
	ActiveOrganizationID *string         `json:"activeOrganizationId"`
	ActiveSectionID      *string         `json:"activeSectionId"`
	Language             string          `json:"language"`
	LastViewState        json.RawMessage `json:"lastViewState"`
}

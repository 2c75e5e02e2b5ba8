package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SessionResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organizationId"`
	SectionID      string  `json:"sectionId"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	StartedAt      string  `json:"startedAt"`
	ClosedAt       *string `json:"closedAt"`
}

type ListSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

type RecordResponse struct {
	ID               string  `json:"id"`
	SessionID        string  `json:"sessionId"`
	ItemID           string  `json:"itemId"`
	ExpectedQuantity float64 `json:"expectedQuantity"`
	ActualQuantity   float64 `json:"actualQuantity"`
	DiffQuantity     float64 `json:"diffQuantity"`
	UpdatedAt        string  `json:"updatedAt"`
}

type SessionDetailResponse struct {
	Session SessionResponse  `json:"session"`
	Records []RecordResponse `json:"records"`
}

type OpenSessionRequest struct {
	OrganizationID string `json:"organizationId"`
	SectionID      string `json:"sectionId"`
	Name           string `json:"name"`
}

type RecordCountRequest struct {
	ItemID         string  `json:"itemId"`
	ActualQuantity float64 `json:"actualQuantity"`
}

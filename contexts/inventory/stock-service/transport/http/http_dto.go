package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ItemResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organizationId"`
	SectionID      string  `json:"sectionId"`
	Name           string  `json:"name"`
	Vintage        *int    `json:"vintage"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	UpdatedAt      string  `json:"updatedAt"`
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

type CreateItemRequest struct {
	OrganizationID string  `json:"organizationId"`
	SectionID      string  `json:"sectionId"`
	Name           string  `json:"name"`
	Vintage        *int    `json:"vintage"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

type UpdateItemRequest struct {
	Name     *string  `json:"name"`
	Vintage  *int     `json:"vintage"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

type MutationResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

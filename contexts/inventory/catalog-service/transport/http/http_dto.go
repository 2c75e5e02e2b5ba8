package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CategoryResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	SectionID      string `json:"sectionId"`
	Name           string `json:"name"`
	DisplayOrder   int    `json:"displayOrder"`
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CreateCategoryRequest struct {
	OrganizationID string `json:"organizationId"`
	SectionID      string `json:"sectionId"`
	Name           string `json:"name"`
	DisplayOrder   int    `json:"displayOrder"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"displayOrder"`
}

type SupplierResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organizationId"`
	SectionID      string  `json:"sectionId"`
	Name           string  `json:"name"`
	ContactInfo    *string `json:"contactInfo"`
}

type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

type CreateSupplierRequest struct {
	OrganizationID string  `json:"organizationId"`
	SectionID      string  `json:"sectionId"`
	Name           string  `json:"name"`
	ContactInfo    *string `json:"contactInfo"`
}

type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactInfo *string `json:"contactInfo"`
}

type MutationResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

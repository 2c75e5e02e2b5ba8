package entities

// Supplier is a vendor a section orders from. ContactInfo holds a free-form
// phone number or email.
type Supplier struct {
	SupplierID     string
	OrganizationID string
	SectionID      string
	Name           string
	ContactInfo    *string
}

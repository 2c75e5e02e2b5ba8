package entities

// Category groups items inside one section ("red wine", "leafy greens").
type Category struct {
	CategoryID     string
	OrganizationID string
	SectionID      string
	Name           string
	DisplayOrder   int
}

package entities

import "encoding/json"

// Section is a sub-scope within an organization (a venue department such as
// "Bar" or "Wine Cellar"). Settings is a free-form UI settings blob.
type Section struct {
	SectionID      string
	OrganizationID string
	Name           string
	Settings       json.RawMessage
}

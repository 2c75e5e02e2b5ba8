package entities

import "time"

// Item is a stocked product inside one section. OrganizationID is denormalized
// onto the row so ownership checks never trust client input.
type Item struct {
	ItemID         string
	OrganizationID string
	SectionID      string
	Name           string
	Vintage        *int
	Quantity       float64
	Unit           string
	UpdatedAt      time.Time
}

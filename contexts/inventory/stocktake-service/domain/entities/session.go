package entities

import "time"

const (
	SessionOpen   = "open"
	SessionClosed = "closed"
)

// Session is one counting event for a section ("end of October stocktake").
// Closing a session overwrites the counted items' theoretical stock.
type Session struct {
	SessionID      string
	OrganizationID string
	SectionID      string
	Name           string
	Status         string
	StartedAt      time.Time
	ClosedAt       *time.Time
}

package entities

import "time"

// Member grants a user access to an organization. Its existence for an
// (organization, user) pair is the authorization predicate used everywhere;
// the role is stored but not gated.
type Member struct {
	MemberID       string
	OrganizationID string
	UserID         string
	Role           string
	JoinedAt       time.Time
}

package entities

import "time"

const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Organization is the tenancy root. Every section, membership and inventory
// row hangs off exactly one organization.
type Organization struct {
	OrganizationID string
	Name           string
	Plan           string
	CreatedAt      time.Time
}

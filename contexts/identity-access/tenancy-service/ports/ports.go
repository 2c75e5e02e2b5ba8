package ports

import (
	"context"
	"time"

	"tanavent/contexts/identity-access/tenancy-service/domain/entities"
)

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository persists tenancy entities. CreateOrganizationWithOwner must be
// atomic: either both rows land or neither does.
type Repository interface {
	ListOrganizationsByUser(ctx context.Context, userID string) ([]entities.Organization, error)
	CreateOrganizationWithOwner(ctx context.Context, org entities.Organization, owner entities.Member) error

	HasMembership(ctx context.Context, organizationID string, userID string) (bool, error)

	ListSections(ctx context.Context, organizationID string) ([]entities.Section, error)
	CreateSection(ctx context.Context, section entities.Section) error
	// UpdateSection and DeleteSection are double-scoped by
	// (id AND organization_id); a zero-row match is not an error so a caller
	// cannot probe another tenant's section ids through the response.
	UpdateSection(ctx context.Context, organizationID string, sectionID string, name string) error
	DeleteSection(ctx context.Context, organizationID string, sectionID string) error
}

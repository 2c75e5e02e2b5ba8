package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"tanavent/contexts/identity-access/tenancy-service/domain/entities"
	domainerrors "tanavent/contexts/identity-access/tenancy-service/domain/errors"
	"tanavent/contexts/identity-access/tenancy-service/ports"
)

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Authorize is the tenancy guard: allow iff a membership row exists for
// (organizationID, callerID). Role is intentionally not inspected.
func (s Service) Authorize(ctx context.Context, callerID string, organizationID string) error {
	if strings.TrimSpace(callerID) == "" || strings.TrimSpace(organizationID) == "" {
		return domainerrors.ErrForbidden
	}
	ok, err := s.Repo.HasMembership(ctx, organizationID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrForbidden
	}
	return nil
}

func (s Service) ListOrganizations(ctx context.Context, callerID string) ([]entities.Organization, error) {
	return s.Repo.ListOrganizationsByUser(ctx, callerID)
}

// CreateOrganization creates the organization together with an owner
// membership for the caller. The pair is written atomically: an organization
// without at least one owner must never be observable.
func (s Service) CreateOrganization(ctx context.Context, callerID string, name string) (entities.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Organization{}, domainerrors.ErrInvalidRequest
	}

	orgID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Organization{}, err
	}
	memberID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Organization{}, err
	}
	now := s.now()

	org := entities.Organization{
		OrganizationID: orgID,
		Name:           name,
		Plan:           entities.PlanFree,
		CreatedAt:      now,
	}
	owner := entities.Member{
		MemberID:       memberID,
		OrganizationID: orgID,
		UserID:         callerID,
		Role:           ports.RoleOwner,
		JoinedAt:       now,
	}

	if err := s.Repo.CreateOrganizationWithOwner(ctx, org, owner); err != nil {
		return entities.Organization{}, err
	}

	s.logger().Info("organization created",
		"event", "tenancy_organization_created",
		"module", "identity-access/tenancy-service",
		"layer", "application",
		"organization_id", orgID,
	)
	return org, nil
}

func (s Service) ListSections(ctx context.Context, callerID string, organizationID string) ([]entities.Section, error) {
	if err := s.Authorize(ctx, callerID, organizationID); err != nil {
		return nil, err
	}
	return s.Repo.ListSections(ctx, organizationID)
}

func (s Service) CreateSection(ctx context.Context, callerID string, organizationID string, name string) (entities.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Section{}, domainerrors.ErrInvalidRequest
	}
	if err := s.Authorize(ctx, callerID, organizationID); err != nil {
		return entities.Section{}, err
	}

	sectionID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Section{}, err
	}
	section := entities.Section{
		SectionID:      sectionID,
		OrganizationID: organizationID,
		Name:           name,
		Settings:       json.RawMessage(`{}`),
	}
	if err := s.Repo.CreateSection(ctx, section); err != nil {
		return entities.Section{}, err
	}
	return section, nil
}

func (s Service) UpdateSection(ctx context.Context, callerID string, organizationID string, sectionID string, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domainerrors.ErrInvalidRequest
	}
	if err := s.Authorize(ctx, callerID, organizationID); err != nil {
		return err
	}
	return s.Repo.UpdateSection(ctx, organizationID, sectionID, name)
}

func (s Service) DeleteSection(ctx context.Context, callerID string, organizationID string, sectionID string) error {
	if err := s.Authorize(ctx, callerID, organizationID); err != nil {
		return err
	}
	return s.Repo.DeleteSection(ctx, organizationID, sectionID)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tanavent/contexts/identity-access/tenancy-service/domain/entities"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the tenancy ports.
// It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	organizations map[string]entities.Organization
	sections      map[string]entities.Section
	members       map[string]entities.Member

	failOwnerInsert error
}

func NewStore() *Store {
	return &Store{
		organizations: make(map[string]entities.Organization),
		sections:      make(map[string]entities.Section),
		members:       make(map[string]entities.Member),
	}
}

// FailNextOwnerInsert makes the next CreateOrganizationWithOwner fail after
// the organization row is staged, exercising the all-or-nothing guarantee.
func (s *Store) FailNextOwnerInsert(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOwnerInsert = err
}

// OrganizationExists reports whether an organization row is present,
// regardless of memberships. Used by tests to assert no orphan rows.
func (s *Store) OrganizationExists(organizationID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.organizations[organizationID]
	return ok
}

func (s *Store) ListOrganizationsByUser(_ context.Context, userID string) ([]entities.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Organization, 0)
	for _, member := range s.members {
		if member.UserID != userID {
			continue
		}
		if org, ok := s.organizations[member.OrganizationID]; ok {
			items = append(items, org)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CreateOrganizationWithOwner(_ context.Context, org entities.Organization, owner entities.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.organizations[org.OrganizationID] = org
	if s.failOwnerInsert != nil {
		err := s.failOwnerInsert
		s.failOwnerInsert = nil
		delete(s.organizations, org.OrganizationID)
		return err
	}
	s.members[owner.MemberID] = owner
	return nil
}

func (s *Store) HasMembership(_ context.Context, organizationID string, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, member := range s.members {
		if member.OrganizationID == organizationID && member.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListSections(_ context.Context, organizationID string) ([]entities.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Section, 0)
	for _, section := range s.sections {
		if section.OrganizationID == organizationID {
			items = append(items, section)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *Store) CreateSection(_ context.Context, section entities.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections[section.SectionID] = section
	return nil
}

func (s *Store) UpdateSection(_ context.Context, organizationID string, sectionID string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, ok := s.sections[sectionID]
	if !ok || section.OrganizationID != organizationID {
		return nil
	}
	section.Name = name
	s.sections[sectionID] = section
	return nil
}

func (s *Store) DeleteSection(_ context.Context, organizationID string, sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, ok := s.sections[sectionID]
	if !ok || section.OrganizationID != organizationID {
		return nil
	}
	delete(s.sections, sectionID)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

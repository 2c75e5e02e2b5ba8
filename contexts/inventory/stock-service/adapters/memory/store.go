package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tanavent/contexts/inventory/stock-service/domain/entities"
	"tanavent/contexts/inventory/stock-service/ports"
)

// Store is the in-memory repository used by tests and local development. The
// section and membership tables are seeded by tests to stand in for the
// shared tenancy state.
type Store struct {
	mu       sync.RWMutex
	items    map[string]entities.Item
	sections map[string]ports.SectionRef
	members  map[string]map[string]bool
}

func NewStore() *Store {
	return &Store{
		items:    make(map[string]entities.Item),
		sections: make(map[string]ports.SectionRef),
		members:  make(map[string]map[string]bool),
	}
}

func (s *Store) SeedSection(section ports.SectionRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections[section.SectionID] = section
}

func (s *Store) SeedMembership(organizationID string, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.members[organizationID] == nil {
		s.members[organizationID] = make(map[string]bool)
	}
	s.members[organizationID][userID] = true
}

func (s *Store) GetSection(_ context.Context, sectionID string) (ports.SectionRef, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, ok := s.sections[sectionID]
	return section, ok, nil
}

func (s *Store) SectionBelongsTo(_ context.Context, sectionID string, organizationID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, ok := s.sections[sectionID]
	return ok && section.OrganizationID == organizationID, nil
}

func (s *Store) HasMembership(_ context.Context, organizationID string, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.members[organizationID][userID], nil
}

func (s *Store) ListItemsBySection(_ context.Context, sectionID string) ([]entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Item, 0)
	for _, item := range s.items {
		if item.SectionID == sectionID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) GetItem(_ context.Context, itemID string) (entities.Item, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	return item, ok, nil
}

func (s *Store) CreateItem(_ context.Context, item entities.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.ItemID] = item
	return nil
}

func (s *Store) UpdateItem(_ context.Context, item entities.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ItemID]; !ok {
		return nil
	}
	s.items[item.ItemID] = item
	return nil
}

func (s *Store) DeleteItem(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, itemID)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID() string {
	return uuid.NewString()
}

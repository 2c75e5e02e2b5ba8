package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tanavent/contexts/inventory/stocktake-service/domain/entities"
	"tanavent/contexts/inventory/stocktake-service/ports"
)

// Store is the in-memory repository used by tests and local development. The
// section, membership and item tables are seeded by tests to stand in for
// the shared tenancy and stock state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
	records  map[string]entities.Record
	sections map[string]ports.SectionRef
	members  map[string]map[string]bool
	items    map[string]ports.ItemRef
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]entities.Session),
		records:  make(map[string]entities.Record),
		sections: make(map[string]ports.SectionRef),
		members:  make(map[string]map[string]bool),
		items:    make(map[string]ports.ItemRef),
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

func (s *Store) SeedItem(item ports.ItemRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.ItemID] = item
}

// ItemQuantity reads the seeded item's stock so tests can observe the close
// reconciliation.
func (s *Store) ItemQuantity(itemID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.items[itemID].Quantity
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

func (s *Store) GetItem(_ context.Context, itemID string) (ports.ItemRef, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	return item, ok, nil
}

func (s *Store) CreateSession(_ context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.SessionID] = session
	return nil
}

func (s *Store) ListSessionsBySection(_ context.Context, sectionID string) ([]entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]entities.Session, 0)
	for _, session := range s.sessions {
		if session.SectionID == sectionID {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].StartedAt.Before(sessions[j].StartedAt) })
	return sessions, nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (entities.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	return session, ok, nil
}

func (s *Store) ListRecords(_ context.Context, sessionID string) ([]entities.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]entities.Record, 0)
	for _, record := range s.records {
		if record.SessionID == sessionID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ItemID < records[j].ItemID })
	return records, nil
}

func (s *Store) GetRecordForItem(_ context.Context, sessionID string, itemID string) (entities.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.SessionID == sessionID && record.ItemID == itemID {
			return record, true, nil
		}
	}
	return entities.Record{}, false, nil
}

func (s *Store) UpsertRecord(_ context.Context, record entities.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.RecordID] = record
	return nil
}

func (s *Store) CloseSession(_ context.Context, session entities.Session, records []entities.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.SessionID] = session
	for _, record := range records {
		item, ok := s.items[record.ItemID]
		if !ok {
			continue
		}
		item.Quantity = record.ActualQuantity
		s.items[record.ItemID] = item
	}
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID() string {
	return uuid.NewString()
}

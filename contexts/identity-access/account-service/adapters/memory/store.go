package memory

import (
	"context"
	"sync"
	"time"

	"tanavent/contexts/identity-access/account-service/domain/entities"
)

// Store is the in-memory repository used by tests and local development.
type Store struct {
	mu          sync.RWMutex
	users       map[string]entities.User
	preferences map[string]entities.Preference
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]entities.User),
		preferences: make(map[string]entities.Preference),
	}
}

func (s *Store) GetUser(_ context.Context, userID string) (entities.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	return user, ok, nil
}

func (s *Store) CreateUserIfAbsent(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; ok {
		return nil
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) UpdateDisplayName(_ context.Context, userID string, displayName string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil
	}
	user.DisplayName = displayName
	user.UpdatedAt = now
	s.users[userID] = user
	return nil
}

func (s *Store) GetPreference(_ context.Context, userID string) (entities.Preference, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	preference, ok := s.preferences[userID]
	return preference, ok, nil
}

func (s *Store) UpsertPreference(_ context.Context, preference entities.Preference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences[preference.UserID] = preference
	return nil
}

// PreferenceExists reports whether a row is persisted for the user. Reads via
// the service fall back to a default and cannot distinguish the two.
func (s *Store) PreferenceExists(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.preferences[userID]
	return ok
}

// PreferenceCount reports how many preference rows are persisted for the
// user, so tests can assert the upsert never accumulates rows.
func (s *Store) PreferenceCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for id := range s.preferences {
		if id == userID {
			count++
		}
	}
	return count
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

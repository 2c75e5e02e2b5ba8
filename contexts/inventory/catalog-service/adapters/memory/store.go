package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"tanavent/contexts/inventory/catalog-service/domain/entities"
	"tanavent/contexts/inventory/catalog-service/ports"
)

// Store is the in-memory repository used by tests and local development.
type Store struct {
	mu         sync.RWMutex
	categories map[string]entities.Category
	suppliers  map[string]entities.Supplier
	sections   map[string]ports.SectionRef
	members    map[string]map[string]bool
}

func NewStore() *Store {
	return &Store{
		categories: make(map[string]entities.Category),
		suppliers:  make(map[string]entities.Supplier),
		sections:   make(map[string]ports.SectionRef),
		members:    make(map[string]map[string]bool),
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

func (s *Store) ListCategoriesBySection(_ context.Context, sectionID string) ([]entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]entities.Category, 0)
	for _, category := range s.categories {
		if category.SectionID == sectionID {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].DisplayOrder != categories[j].DisplayOrder {
			return categories[i].DisplayOrder < categories[j].DisplayOrder
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (s *Store) GetCategory(_ context.Context, categoryID string) (entities.Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[categoryID]
	return category, ok, nil
}

func (s *Store) CreateCategory(_ context.Context, category entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[category.CategoryID] = category
	return nil
}

func (s *Store) UpdateCategory(_ context.Context, category entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.CategoryID]; !ok {
		return nil
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (s *Store) DeleteCategory(_ context.Context, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categories, categoryID)
	return nil
}

func (s *Store) ListSuppliersBySection(_ context.Context, sectionID string) ([]entities.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suppliers := make([]entities.Supplier, 0)
	for _, supplier := range s.suppliers {
		if supplier.SectionID == sectionID {
			suppliers = append(suppliers, supplier)
		}
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].Name < suppliers[j].Name })
	return suppliers, nil
}

func (s *Store) GetSupplier(_ context.Context, supplierID string) (entities.Supplier, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplier, ok := s.suppliers[supplierID]
	return supplier, ok, nil
}

func (s *Store) CreateSupplier(_ context.Context, supplier entities.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suppliers[supplier.SupplierID] = supplier
	return nil
}

func (s *Store) UpdateSupplier(_ context.Context, supplier entities.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suppliers[supplier.SupplierID]; !ok {
		return nil
	}
	s.suppliers[supplier.SupplierID] = supplier
	return nil
}

func (s *Store) DeleteSupplier(_ context.Context, supplierID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.suppliers, supplierID)
	return nil
}

func (s *Store) NewID() string {
	return uuid.NewString()
}

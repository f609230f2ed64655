package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
)

// Ensure MenuStore implements the interfaces.
var (
	_ driven.MenuWriter = (*MenuStore)(nil)
	_ driven.MenuReader = (*MenuStore)(nil)
)

// MenuStore is an in-memory implementation of driven.MenuWriter and
// driven.MenuReader.
type MenuStore struct {
	mu       sync.RWMutex
	weeks    map[string]map[domain.WeekKey]*domain.Week
	combined map[string]domain.CombinedDocument
}

// NewMenuStore creates a new in-memory menu store.
func NewMenuStore() *MenuStore {
	return &MenuStore{
		weeks:    make(map[string]map[domain.WeekKey]*domain.Week),
		combined: make(map[string]domain.CombinedDocument),
	}
}

// WriteWeek stores a single week document.
func (s *MenuStore) WriteWeek(location string, week *domain.Week) error {
	if location == "" || week == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.weeks[location] == nil {
		s.weeks[location] = make(map[domain.WeekKey]*domain.Week)
	}
	s.weeks[location][week.Key()] = week
	return nil
}

// WriteCombined stores the combined document of a location.
func (s *MenuStore) WriteCombined(doc domain.CombinedDocument) error {
	if doc.CanteenID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.combined[doc.CanteenID] = doc
	return nil
}

// Week returns a stored week document.
func (s *MenuStore) Week(location string, key domain.WeekKey) (*domain.Week, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	week, ok := s.weeks[location][key]
	return week, ok
}

// ReadCombined returns the combined document of location.
func (s *MenuStore) ReadCombined(location string) (*domain.CombinedDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.combined[location]
	if !ok {
		return nil, fmt.Errorf("%w: no menus for %s", domain.ErrNotFound, location)
	}
	return &doc, nil
}

// Locations lists the locations with a combined document, sorted.
func (s *MenuStore) Locations() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, 0, len(s.combined))
	for location := range s.combined {
		result = append(result, location)
	}
	sort.Strings(result)
	return result, nil
}

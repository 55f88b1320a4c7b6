// FILE: pkg/waypoints/inmem_store.go

package waypoints

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore is a thread-safe, in-memory implementation of the Store interface.
type InMemoryStore struct {
	sync.RWMutex
	waypoints map[uuid.UUID]Waypoint
	byCode    map[string]uuid.UUID
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		waypoints: make(map[uuid.UUID]Waypoint),
		byCode:    make(map[string]uuid.UUID),
	}
}

// Add saves a new waypoint. Codes are unique regardless of case.
func (s *InMemoryStore) Add(ctx context.Context, wp Waypoint) error {
	s.Lock()
	defer s.Unlock()
	code := normalizeCode(wp.Code)
	if _, exists := s.byCode[code]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCode, code)
	}
	s.waypoints[wp.ID] = wp
	s.byCode[code] = wp.ID
	return nil
}

// GetByID retrieves a waypoint by its UUID.
func (s *InMemoryStore) GetByID(ctx context.Context, id uuid.UUID) (Waypoint, error) {
	s.RLock()
	defer s.RUnlock()
	wp, ok := s.waypoints[id]
	if !ok {
		return Waypoint{}, fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	return wp, nil
}

// GetByCode retrieves a waypoint by its code, ignoring case.
func (s *InMemoryStore) GetByCode(ctx context.Context, code string) (Waypoint, error) {
	s.RLock()
	defer s.RUnlock()
	id, ok := s.byCode[normalizeCode(code)]
	if !ok {
		return Waypoint{}, fmt.Errorf("%w: code %q", ErrNotFound, code)
	}
	return s.waypoints[id], nil
}

// List returns every waypoint ordered by code.
func (s *InMemoryStore) List(ctx context.Context) ([]Waypoint, error) {
	s.RLock()
	defer s.RUnlock()

	all := make([]Waypoint, 0, len(s.waypoints))
	for _, wp := range s.waypoints {
		all = append(all, wp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	return all, nil
}

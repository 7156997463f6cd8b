// Package memory provides the in-process record cache, the default backend.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// Store is a process-lifetime record cache. All methods are safe for
// concurrent use. Records are held by reference and treated as immutable.
type Store struct {
	mu      sync.RWMutex
	records map[string]*pokedex.Pokemon
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{records: make(map[string]*pokedex.Pokemon)}
}

// Get implements pokedex.Store.
//
// Postcondition: a miss returns an error wrapping pokedex.ErrNotFound.
func (s *Store) Get(_ context.Context, id string) (*pokedex.Pokemon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("memory store: %q: %w", id, pokedex.ErrNotFound)
	}
	return record, nil
}

// Put implements pokedex.Store. An existing record under id is replaced.
//
// Precondition: record must be non-nil.
func (s *Store) Put(_ context.Context, id string, record *pokedex.Pokemon) error {
	if record == nil {
		return fmt.Errorf("memory store: Put called with nil record for %q", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = record
	return nil
}

// Len returns the number of cached records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

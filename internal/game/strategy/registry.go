// Package strategy maps strategy names onto move-selection policies. The
// builtin policies cover the common cases; Lua-scripted strategies loaded
// through the scripting sandbox extend the set without a rebuild.
package strategy

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/manav8826/MCP-pokemon/internal/game/battle"
)

// ErrUnknownStrategy is returned by Select for names nothing registered.
var ErrUnknownStrategy = errors.New("strategy: unknown strategy")

// Registry indexes MoveSelectors by strategy name.
//
// Invariant: each name is registered at most once.
type Registry struct {
	mu        sync.RWMutex
	selectors map[string]battle.MoveSelector
}

// NewRegistry returns a Registry preloaded with the builtin policies,
// "balanced" and "aggressive".
func NewRegistry() *Registry {
	return &Registry{selectors: map[string]battle.MoveSelector{
		"balanced":   battle.BalancedSelector{},
		"aggressive": battle.AggressiveSelector{},
	}}
}

// Register stores selector under name.
//
// Precondition: name must be non-empty and selector non-nil.
// Postcondition: returns error on name collision.
func (r *Registry) Register(name string, selector battle.MoveSelector) error {
	if name == "" {
		return errors.New("strategy: Register called with empty name")
	}
	if selector == nil {
		return fmt.Errorf("strategy: Register called with nil selector for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.selectors[name]; exists {
		return fmt.Errorf("strategy: %q already registered", name)
	}
	r.selectors[name] = selector
	return nil
}

// Select returns the selector registered under name.
//
// Postcondition: the error wraps ErrUnknownStrategy when name is missing.
func (r *Registry) Select(name string) (battle.MoveSelector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.selectors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Names returns the registered strategy names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.selectors))
	for name := range r.selectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

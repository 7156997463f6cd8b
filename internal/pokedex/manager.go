package pokedex

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound signals that no record exists under an identifier, in a store
// tier or at the remote catalog.
var ErrNotFound = errors.New("pokedex: record not found")

// Store is a cache tier for resolved records. A miss is signalled by an
// error wrapping ErrNotFound.
type Store interface {
	Get(ctx context.Context, id string) (*Pokemon, error)
	Put(ctx context.Context, id string, record *Pokemon) error
}

// Fetcher retrieves a record from the remote catalog. An unknown identifier
// is signalled by an error wrapping ErrNotFound.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (*Pokemon, error)
}

// Normalize returns the canonical identifier form: trimmed and lower-cased.
// Store keys and catalog requests both use this form.
func Normalize(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// Manager resolves creature identifiers through the store tier first and the
// remote catalog second, writing fetched records back to the store.
//
// Manager is safe for concurrent use when its Store and Fetcher are.
type Manager struct {
	store   Store
	fetcher Fetcher
	logger  *zap.Logger
}

// NewManager constructs a Manager.
//
// Precondition: store and fetcher must be non-nil. A nil logger disables
// logging.
func NewManager(store Store, fetcher Fetcher, logger *zap.Logger) *Manager {
	if store == nil {
		panic("pokedex: NewManager called with nil store")
	}
	if fetcher == nil {
		panic("pokedex: NewManager called with nil fetcher")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, fetcher: fetcher, logger: logger}
}

// Resolve returns the record for identifier, fetching and caching it on a
// store miss. A failing store tier is logged and bypassed; it never takes
// resolution down with it.
//
// Postcondition: the error wraps ErrNotFound when the catalog has no such
// creature. The returned record must be treated as immutable; callers share it.
func (m *Manager) Resolve(ctx context.Context, identifier string) (*Pokemon, error) {
	id := Normalize(identifier)
	if id == "" {
		return nil, errors.New("pokedex: Resolve called with empty identifier")
	}

	record, err := m.store.Get(ctx, id)
	switch {
	case err == nil:
		m.logger.Debug("record resolved from store", zap.String("id", id))
		return record, nil
	case !errors.Is(err, ErrNotFound):
		m.logger.Warn("store lookup failed",
			zap.String("id", id),
			zap.Error(err),
		)
	}

	record, err = m.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := m.store.Put(ctx, id, record); err != nil {
		m.logger.Warn("store write failed",
			zap.String("id", id),
			zap.Error(err),
		)
	}
	m.logger.Info("record fetched from catalog",
		zap.String("id", id),
		zap.String("name", record.Name),
	)
	return record, nil
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// PokemonRepository is the durable record cache tier. Records are stored as
// JSONB keyed by the normalized identifier, so the cache survives restarts
// and is shared across server processes.
//
// It implements pokedex.Store.
type PokemonRepository struct {
	db *pgxpool.Pool
}

// NewPokemonRepository creates a PokemonRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewPokemonRepository(db *pgxpool.Pool) *PokemonRepository {
	return &PokemonRepository{db: db}
}

// Get retrieves the cached record for id.
//
// Precondition: id must be normalized (pokedex.Normalize).
// Postcondition: a miss returns an error wrapping pokedex.ErrNotFound.
func (r *PokemonRepository) Get(ctx context.Context, id string) (*pokedex.Pokemon, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT record FROM pokemon_cache WHERE id = $1`, id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pokemon cache: %q: %w", id, pokedex.ErrNotFound)
		}
		return nil, fmt.Errorf("querying pokemon cache: %w", err)
	}

	var record pokedex.Pokemon
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decoding cached record %q: %w", id, err)
	}
	return &record, nil
}

// Put stores record under id, replacing any previous entry and refreshing
// its fetched_at timestamp.
//
// Precondition: id must be normalized; record must be non-nil.
func (r *PokemonRepository) Put(ctx context.Context, id string, record *pokedex.Pokemon) error {
	if record == nil {
		return fmt.Errorf("pokemon cache: Put called with nil record for %q", id)
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", id, err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO pokemon_cache (id, record, fetched_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record, fetched_at = NOW()`,
		id, raw,
	)
	if err != nil {
		return fmt.Errorf("upserting pokemon cache: %w", err)
	}
	return nil
}

// Count returns the number of cached records.
func (r *PokemonRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pokemon_cache`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting pokemon cache: %w", err)
	}
	return n, nil
}

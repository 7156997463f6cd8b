package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
	"github.com/manav8826/MCP-pokemon/internal/storage/postgres"
	"github.com/manav8826/MCP-pokemon/internal/testutil"
)

func setupRepo(t *testing.T) *postgres.PokemonRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return postgres.NewPokemonRepository(pc.RawPool)
}

func sampleRecord() *pokedex.Pokemon {
	return &pokedex.Pokemon{
		ID:    6,
		Name:  "Charizard",
		Types: []string{"fire", "flying"},
		Stats: pokedex.Stats{
			HP: 78, Attack: 84, Defense: 78,
			SpecialAttack: 109, SpecialDefense: 85, Speed: 100,
		},
		Abilities: []string{"Blaze", "Solar Power"},
		Moves: []pokedex.Move{
			{Name: "Flamethrower", Type: "fire", Power: intp(90), Accuracy: intp(100), Effect: "Has a 10% chance to burn the target."},
			{Name: "Fly", Type: "flying", Power: intp(90), Accuracy: intp(95), Effect: "User flies up on the first turn, then strikes."},
		},
		EvolutionPaths: []string{"Charmander -> Charmeleon -> Charizard"},
		FlavorText:     "Spits fire that is hot enough to melt boulders.",
		EVYield:        "3 SPECIAL-ATTACK",
		SpriteURL:      "https://example.org/charizard.png",
	}
}

func intp(v int) *int { return &v }

func TestPokemonRepository_GetMissWrapsNotFound(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.Get(context.Background(), "missingno")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokedex.ErrNotFound))
}

func TestPokemonRepository_PutThenGetRoundTrips(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	want := sampleRecord()
	require.NoError(t, repo.Put(ctx, "charizard", want))

	got, err := repo.Get(ctx, "charizard")
	require.NoError(t, err)
	assert.Equal(t, want, got, "JSONB round trip preserves the whole record")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPokemonRepository_PutUpserts(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first := sampleRecord()
	require.NoError(t, repo.Put(ctx, "charizard", first))

	updated := sampleRecord()
	updated.FlavorText = "Breathes fire of such great heat that it melts anything."
	require.NoError(t, repo.Put(ctx, "charizard", updated))

	got, err := repo.Get(ctx, "charizard")
	require.NoError(t, err)
	assert.Equal(t, updated.FlavorText, got.FlavorText)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "upsert must not create a second row")
}

func TestPokemonRepository_PutNilRecordFails(t *testing.T) {
	repo := setupRepo(t)
	assert.Error(t, repo.Put(context.Background(), "charizard", nil))
}

func TestPokemonRepository_ServesTheManager(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	// The repository satisfies pokedex.Store, so the manager can run on it.
	var store pokedex.Store = repo
	require.NoError(t, store.Put(ctx, "charizard", sampleRecord()))

	mgr := pokedex.NewManager(store, fetcherFunc(func(context.Context, string) (*pokedex.Pokemon, error) {
		t.Fatal("store hit must not reach the fetcher")
		return nil, nil
	}), nil)

	got, err := mgr.Resolve(ctx, "Charizard")
	require.NoError(t, err)
	assert.Equal(t, "Charizard", got.Name)
}

type fetcherFunc func(ctx context.Context, id string) (*pokedex.Pokemon, error)

func (f fetcherFunc) Fetch(ctx context.Context, id string) (*pokedex.Pokemon, error) {
	return f(ctx, id)
}

package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
	"github.com/manav8826/MCP-pokemon/internal/storage/memory"
)

func TestStore_GetMissWrapsNotFound(t *testing.T) {
	store := memory.NewStore()
	_, err := store.Get(context.Background(), "pikachu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokedex.ErrNotFound))
}

func TestStore_PutThenGet(t *testing.T) {
	store := memory.NewStore()
	rec := &pokedex.Pokemon{ID: 25, Name: "Pikachu", Types: []string{"electric"}}

	require.NoError(t, store.Put(context.Background(), "pikachu", rec))

	got, err := store.Get(context.Background(), "pikachu")
	require.NoError(t, err)
	assert.Same(t, rec, got, "records are shared by reference")
	assert.Equal(t, 1, store.Len())
}

func TestStore_PutReplaces(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "eevee", &pokedex.Pokemon{ID: 133, Name: "Eevee"}))
	updated := &pokedex.Pokemon{ID: 133, Name: "Eevee", FlavorText: "Its genes are unstable."}
	require.NoError(t, store.Put(ctx, "eevee", updated))

	got, err := store.Get(ctx, "eevee")
	require.NoError(t, err)
	assert.Same(t, updated, got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_PutNilRecordFails(t *testing.T) {
	store := memory.NewStore()
	assert.Error(t, store.Put(context.Background(), "pikachu", nil))
	assert.Equal(t, 0, store.Len())
}

// TestStore_ConcurrentAccess hammers the store from many goroutines; the race
// detector is the real assertion here.
func TestStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("mon-%d", n%4)
			for j := 0; j < 50; j++ {
				_ = store.Put(ctx, id, &pokedex.Pokemon{ID: n, Name: id})
				_, _ = store.Get(ctx, id)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, store.Len())
}

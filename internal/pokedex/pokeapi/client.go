// Package pokeapi implements the remote catalog client. One Fetch resolves a
// creature into a complete record: the base resource and the species resource
// are fetched in parallel and both must succeed; the evolution chain and the
// sampled move resources degrade gracefully when unavailable.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

const (
	// DefaultBaseURL is the public catalog endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	// DefaultTimeout bounds every catalog request.
	DefaultTimeout = 15 * time.Second
	// DefaultSampleSize is how many moves a record carries.
	DefaultSampleSize = 5

	// moveFetchConcurrency caps parallel move-resource requests per Fetch.
	moveFetchConcurrency = 4
)

// Config carries the client settings. Zero values select the defaults.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	SampleSize int
}

// Client fetches creature records from the remote catalog. It implements
// pokedex.Fetcher and is safe for concurrent use.
type Client struct {
	baseURL    string
	sampleSize int
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient constructs a Client.
//
// Precondition: none; zero-value cfg and nil logger are usable.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultSampleSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		sampleSize: cfg.SampleSize,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Fetch implements pokedex.Fetcher.
//
// Precondition: id must already be normalized (pokedex.Normalize).
// Postcondition: the error wraps pokedex.ErrNotFound when either primary
// resource answers 404.
func (c *Client) Fetch(ctx context.Context, id string) (*pokedex.Pokemon, error) {
	start := time.Now()

	var (
		pokemon pokemonPayload
		species speciesPayload
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, c.baseURL+"/pokemon/"+id, &pokemon)
	})
	g.Go(func() error {
		return c.getJSON(gctx, c.baseURL+"/pokemon-species/"+id, &species)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := c.evolutionPaths(ctx, species.EvolutionChain.URL)
	moves := c.moveSample(ctx, pokemon.Moves)

	record := assembleRecord(&pokemon, &species, paths, moves)
	c.logger.Debug("catalog fetch complete",
		zap.String("id", id),
		zap.Int("moves", len(record.Moves)),
		zap.Duration("duration", time.Since(start)),
	)
	return record, nil
}

// getJSON fetches url and decodes the response body into target.
func (c *Client) getJSON(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("pokeapi: building request for %s: %w", url, err)
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pokeapi: GET %s: %w", url, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("pokeapi: GET %s: %w", url, pokedex.ErrNotFound)
	case res.StatusCode != http.StatusOK:
		return fmt.Errorf("pokeapi: GET %s: unexpected status %d", url, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("pokeapi: decoding %s: %w", url, err)
	}
	return nil
}

// evolutionPaths flattens the chain behind url into " -> "-joined path
// strings, one per leaf. Failures degrade to no paths; a record without
// evolution data is still a complete record.
func (c *Client) evolutionPaths(ctx context.Context, url string) []string {
	if url == "" {
		return nil
	}
	var payload evolutionPayload
	if err := c.getJSON(ctx, url, &payload); err != nil {
		c.logger.Warn("evolution chain fetch failed",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil
	}
	var out []string
	for _, path := range walkChain(&payload.Chain) {
		out = append(out, strings.Join(path, " -> "))
	}
	return out
}

// moveSample resolves the creature's most recently learnable moves: refs are
// ordered by the level of their latest version-group entry, descending, and
// the top sampleSize are fetched. Individual failures skip the move.
func (c *Client) moveSample(ctx context.Context, refs []moveRef) []pokedex.Move {
	sorted := make([]moveRef, len(refs))
	copy(sorted, refs)
	// Stable keeps the catalog's order among equal levels.
	sort.SliceStable(sorted, func(i, j int) bool {
		return lastLevel(sorted[i]) > lastLevel(sorted[j])
	})
	if len(sorted) > c.sampleSize {
		sorted = sorted[:c.sampleSize]
	}

	results := make([]*pokedex.Move, len(sorted))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(moveFetchConcurrency)
	for i := range sorted {
		g.Go(func() error {
			var payload movePayload
			if err := c.getJSON(gctx, sorted[i].Move.URL, &payload); err != nil {
				c.logger.Warn("move fetch failed",
					zap.String("move", sorted[i].Move.Name),
					zap.Error(err),
				)
				return nil
			}
			results[i] = assembleMove(&payload)
			return nil
		})
	}
	_ = g.Wait() // move failures are absorbed above

	out := make([]pokedex.Move, 0, len(results))
	for _, m := range results {
		if m != nil {
			out = append(out, *m)
		}
	}
	return out
}

// Package main provides the cache warmer: it resolves a list of creature
// names through the catalog so later lookups are served from the store.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/manav8826/MCP-pokemon/internal/config"
	"github.com/manav8826/MCP-pokemon/internal/observability"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
	"github.com/manav8826/MCP-pokemon/internal/pokedex/pokeapi"
	"github.com/manav8826/MCP-pokemon/internal/storage/memory"
	"github.com/manav8826/MCP-pokemon/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	names := flag.String("names", "", "comma-separated Pokémon names to warm")
	namesFile := flag.String("names-file", "", "file with one Pokémon name per line")
	concurrency := flag.Int("concurrency", 4, "maximum parallel catalog fetches")
	flag.Parse()

	list, err := nameList(*names, *namesFile)
	if err != nil {
		log.Fatalf("reading name list: %v", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(os.Stderr, "usage: warmcache -names <a,b,c> | -names-file <path> [-config <path>] [-concurrency <n>]")
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var store pokedex.Store
	switch cfg.Cache.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		store = postgres.NewPokemonRepository(pool.DB())
	default:
		logger.Warn("memory cache backend selected, warmed records will not outlive this process")
		store = memory.NewStore()
	}

	client := pokeapi.NewClient(pokeapi.Config{
		BaseURL:    cfg.PokeAPI.BaseURL,
		Timeout:    cfg.PokeAPI.Timeout,
		SampleSize: cfg.PokeAPI.MoveSampleSize,
	}, logger)
	manager := pokedex.NewManager(store, client, logger)

	start := time.Now()

	// Every name is attempted; failures are counted, not short-circuited.
	var failures atomic.Int64
	var g errgroup.Group
	g.SetLimit(*concurrency)
	for _, name := range list {
		g.Go(func() error {
			fetchStart := time.Now()
			record, err := manager.Resolve(ctx, name)
			if err != nil {
				failures.Add(1)
				logger.Error("warm failed",
					zap.String("name", name),
					zap.Error(err),
				)
				return nil
			}
			logger.Info("warmed",
				zap.String("name", name),
				zap.Int("id", record.ID),
				zap.Int("moves", len(record.Moves)),
				zap.Duration("elapsed", time.Since(fetchStart)),
			)
			return nil
		})
	}
	_ = g.Wait()

	if failed := failures.Load(); failed > 0 {
		logger.Fatal("cache warm finished with failures",
			zap.Int64("failed", failed),
			zap.Int("requested", len(list)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	logger.Info("cache warm complete",
		zap.Int("warmed", len(list)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// nameList merges the comma-separated flag and the optional file into one
// normalized, deduplicated list.
func nameList(csv, path string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(raw string) {
		id := pokedex.Normalize(raw)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}

	for _, n := range strings.Split(csv, ",") {
		add(n)
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			add(sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

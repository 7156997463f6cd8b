// Package main provides the Pokémon MCP server binary: catalog resolution
// and battle simulation served over the stdio or SSE transport.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/manav8826/MCP-pokemon/internal/config"
	"github.com/manav8826/MCP-pokemon/internal/game/battle"
	"github.com/manav8826/MCP-pokemon/internal/game/strategy"
	"github.com/manav8826/MCP-pokemon/internal/game/typechart"
	"github.com/manav8826/MCP-pokemon/internal/mcpserver"
	"github.com/manav8826/MCP-pokemon/internal/observability"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
	"github.com/manav8826/MCP-pokemon/internal/pokedex/pokeapi"
	"github.com/manav8826/MCP-pokemon/internal/scripting"
	"github.com/manav8826/MCP-pokemon/internal/server"
	"github.com/manav8826/MCP-pokemon/internal/storage/memory"
	"github.com/manav8826/MCP-pokemon/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

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

	logger.Info("starting pokemon mcp server",
		zap.String("transport", cfg.Server.Transport),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	chart, err := typechart.Load()
	if err != nil {
		logger.Fatal("loading type chart", zap.Error(err))
	}

	// Cache tier
	var store pokedex.Store
	var pool *postgres.Pool
	switch cfg.Cache.Backend {
	case "postgres":
		dbStart := time.Now()
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		store = postgres.NewPokemonRepository(pool.DB())
	default:
		store = memory.NewStore()
	}

	client := pokeapi.NewClient(pokeapi.Config{
		BaseURL:    cfg.PokeAPI.BaseURL,
		Timeout:    cfg.PokeAPI.Timeout,
		SampleSize: cfg.PokeAPI.MoveSampleSize,
	}, logger)
	manager := pokedex.NewManager(store, client, logger)

	// Strategy registry: builtins plus any scripted strategies.
	registry := strategy.NewRegistry()
	if cfg.Battle.ScriptsDir != "" {
		scriptStart := time.Now()
		scriptMgr := scripting.NewManager(logger, cfg.Battle.ScriptInstructionLimit)
		defer scriptMgr.Close()

		names, err := scriptMgr.LoadDirectory(cfg.Battle.ScriptsDir)
		if err != nil {
			logger.Fatal("loading strategy scripts", zap.Error(err))
		}
		for _, name := range names {
			if err := registry.Register(name, strategy.NewLuaSelector(name, scriptMgr, logger)); err != nil {
				logger.Fatal("registering strategy",
					zap.String("strategy", name),
					zap.Error(err),
				)
			}
		}
		logger.Info("strategy scripts loaded",
			zap.Strings("strategies", names),
			zap.Duration("elapsed", time.Since(scriptStart)),
		)
	}
	if _, err := registry.Select(cfg.Battle.DefaultStrategy); err != nil {
		logger.Fatal("default strategy not registered",
			zap.String("strategy", cfg.Battle.DefaultStrategy),
		)
	}

	simulator := battle.NewSimulator(chart, logger, cfg.Battle.MaxRounds)
	srv := mcpserver.New(manager, simulator, registry, cfg.Battle.DefaultStrategy, logger)

	// Wire lifecycle
	lifecycle := server.NewLifecycle(logger)

	switch cfg.Server.Transport {
	case "sse":
		lifecycle.Add("mcp-sse", srv.SSEService(cfg.Server.SSEAddr))
	default:
		lifecycle.Add("mcp-stdio", srv.StdioService())
	}

	if pool != nil {
		lifecycle.Add("postgres", &server.FuncService{
			StartFn: func() error {
				for {
					time.Sleep(30 * time.Second)
					if err := pool.Health(ctx, 5*time.Second); err != nil {
						logger.Warn("database health check failed", zap.Error(err))
					}
				}
			},
			StopFn: func() {
				pool.Close()
			},
		})
	}

	logger.Info("pokemon mcp server initialized",
		zap.Strings("strategies", registry.Names()),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

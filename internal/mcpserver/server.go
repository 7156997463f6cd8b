// Package mcpserver exposes the catalog and the battle engine as MCP tools.
//
// Two transports carry the same tool set: stdio, where stdout is the protocol
// stream, and SSE over HTTP. Transports plug into the process lifecycle as
// services.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/manav8826/MCP-pokemon/internal/game/battle"
	"github.com/manav8826/MCP-pokemon/internal/game/strategy"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

const (
	// ServerName is the identity announced during MCP initialization.
	ServerName = "professional-pokemon-server"
	// Version is the server version announced during MCP initialization.
	Version = "1.0.0"
)

// Resolver turns a creature name into a record. *pokedex.Manager is the
// production implementation.
type Resolver interface {
	Resolve(ctx context.Context, identifier string) (*pokedex.Pokemon, error)
}

// Server wires the resolver, the simulator, and the strategy registry into
// the MCP tool surface.
type Server struct {
	mcp             *server.MCPServer
	resolver        Resolver
	simulator       *battle.Simulator
	strategies      *strategy.Registry
	defaultStrategy string
	logger          *zap.Logger
}

// New constructs the Server and registers its tools.
//
// Precondition: resolver, simulator, and strategies must be non-nil, and
// defaultStrategy must name a registered strategy. A nil logger disables
// logging.
func New(resolver Resolver, simulator *battle.Simulator, strategies *strategy.Registry, defaultStrategy string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		mcp: server.NewMCPServer(ServerName, Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		resolver:        resolver,
		simulator:       simulator,
		strategies:      strategies,
		defaultStrategy: defaultStrategy,
		logger:          logger,
	}

	s.mcp.AddTool(mcp.NewTool("get_pokemon_details",
		mcp.WithDescription("Fetch professional-grade data for a Pokémon, including a strategic analysis."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The Pokémon's name, e.g. \"pikachu\"."),
		),
	), s.handleGetPokemonDetails)

	s.mcp.AddTool(mcp.NewTool("simulate_battle",
		mcp.WithDescription("Simulate a full battle between two Pokémon and return the complete battle log."),
		mcp.WithString("pokemon_one",
			mcp.Required(),
			mcp.Description("Name of the first Pokémon."),
		),
		mcp.WithString("pokemon_two",
			mcp.Required(),
			mcp.Description("Name of the second Pokémon."),
		),
		mcp.WithString("strategy",
			mcp.Description(fmt.Sprintf("Move-selection strategy for both sides. One of: %s. Defaults to %q.",
				strings.Join(strategies.Names(), ", "), defaultStrategy)),
		),
		mcp.WithNumber("seed",
			mcp.Description("Random seed for a reproducible battle. Omit for a random one."),
		),
	), s.handleSimulateBattle)

	return s
}

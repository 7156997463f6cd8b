package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/manav8826/MCP-pokemon/internal/game/rng"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
	"github.com/manav8826/MCP-pokemon/internal/presentation"
)

func (s *Server) handleGetPokemonDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(req.GetString("name", ""))
	if name == "" {
		return mcp.NewToolResultError("Error: Pokémon name is required."), nil
	}

	record, errResult := s.resolveForTool(ctx, name)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(presentation.FormatPokemonDetails(record)), nil
}

func (s *Server) handleSimulateBattle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nameOne := strings.TrimSpace(req.GetString("pokemon_one", ""))
	nameTwo := strings.TrimSpace(req.GetString("pokemon_two", ""))
	if nameOne == "" || nameTwo == "" {
		return mcp.NewToolResultError("Error: Pokémon name is required."), nil
	}

	strategyName := req.GetString("strategy", s.defaultStrategy)
	selector, err := s.strategies.Select(strategyName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Error: Unknown strategy '%s'. Available strategies: %s.",
			strategyName, strings.Join(s.strategies.Names(), ", "))), nil
	}

	src := rng.NewCryptoSource()
	if raw, ok := req.GetArguments()["seed"]; ok && raw != nil {
		seed, err := seedValue(raw)
		if err != nil {
			s.logger.Debug("rejected seed argument", zap.Error(err))
			return mcp.NewToolResultError("Error: seed must be an integer."), nil
		}
		src = rng.NewSeededSource(seed)
	}

	recordOne, errResult := s.resolveForTool(ctx, nameOne)
	if errResult != nil {
		return errResult, nil
	}
	recordTwo, errResult := s.resolveForTool(ctx, nameTwo)
	if errResult != nil {
		return errResult, nil
	}

	report := s.simulator.Run(recordOne, recordTwo, selector, src)
	s.logger.Info("battle simulated",
		zap.String("battle_id", report.ID),
		zap.String("pokemon_one", recordOne.Name),
		zap.String("pokemon_two", recordTwo.Name),
		zap.String("strategy", strategyName),
		zap.String("winner", report.Winner),
		zap.Int("rounds", report.Rounds),
	)
	return mcp.NewToolResultText(report.Log()), nil
}

// resolveForTool resolves one name into a record, mapping any failure onto
// the tool-facing error result. The cause is logged, never sent to the
// client.
func (s *Server) resolveForTool(ctx context.Context, name string) (*pokedex.Pokemon, *mcp.CallToolResult) {
	record, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		s.logger.Warn("resolution failed",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, mcp.NewToolResultError(fmt.Sprintf("Error: Could not find data for Pokémon '%s'.", name))
	}
	return record, nil
}

// seedValue coerces a decoded JSON argument into a seed. Fractional values
// are rejected rather than truncated.
func seedValue(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("seed %v is not an integer", v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		return v.Int64()
	default:
		return 0, fmt.Errorf("seed has unsupported type %T", raw)
	}
}

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav8826/MCP-pokemon/internal/game/battle"
	"github.com/manav8826/MCP-pokemon/internal/game/strategy"
	"github.com/manav8826/MCP-pokemon/internal/game/typechart"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
	"github.com/manav8826/MCP-pokemon/internal/presentation"
)

type fakeResolver struct {
	records map[string]*pokedex.Pokemon
}

func (f *fakeResolver) Resolve(_ context.Context, identifier string) (*pokedex.Pokemon, error) {
	rec, ok := f.records[pokedex.Normalize(identifier)]
	if !ok {
		return nil, fmt.Errorf("fake resolver: %q: %w", identifier, pokedex.ErrNotFound)
	}
	return rec, nil
}

func intp(v int) *int { return &v }

func machamp() *pokedex.Pokemon {
	return &pokedex.Pokemon{
		ID: 68, Name: "Machamp", Types: []string{"fighting"},
		Stats:     pokedex.Stats{HP: 90, Attack: 130, Defense: 80, SpecialAttack: 65, SpecialDefense: 85, Speed: 55},
		Abilities: []string{"Guts"},
		Moves:     []pokedex.Move{{Name: "Cross Chop", Type: "fighting", Power: intp(100), Accuracy: intp(80), Effect: "High critical hit ratio."}},
	}
}

func rattata() *pokedex.Pokemon {
	return &pokedex.Pokemon{
		ID: 19, Name: "Rattata", Types: []string{"normal"},
		Stats: pokedex.Stats{HP: 30, Attack: 56, Defense: 35, SpecialAttack: 25, SpecialDefense: 35, Speed: 72},
		Moves: []pokedex.Move{{Name: "Tackle", Type: "normal", Power: intp(35), Accuracy: intp(100), Effect: "Inflicts regular damage."}},
	}
}

func testServer(t *testing.T, records ...*pokedex.Pokemon) *Server {
	t.Helper()
	resolver := &fakeResolver{records: map[string]*pokedex.Pokemon{}}
	for _, r := range records {
		resolver.records[pokedex.Normalize(r.Name)] = r
	}
	sim := battle.NewSimulator(typechart.MustLoad(), nil, 0)
	return New(resolver, sim, strategy.NewRegistry(), "balanced", nil)
}

func callRequest(tool string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "tool results carry text content")
	return tc.Text
}

func TestGetPokemonDetails_RendersProfile(t *testing.T) {
	record := machamp()
	s := testServer(t, record)

	res, err := s.handleGetPokemonDetails(context.Background(),
		callRequest("get_pokemon_details", map[string]any{"name": "Machamp"}))
	require.NoError(t, err)

	assert.False(t, res.IsError)
	assert.Equal(t, presentation.FormatPokemonDetails(record), resultText(t, res))
}

func TestGetPokemonDetails_BlankName(t *testing.T) {
	s := testServer(t)

	for _, args := range []map[string]any{
		nil,
		{"name": ""},
		{"name": "   "},
	} {
		res, err := s.handleGetPokemonDetails(context.Background(),
			callRequest("get_pokemon_details", args))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, "Error: Pokémon name is required.", resultText(t, res))
	}
}

func TestGetPokemonDetails_UnknownName(t *testing.T) {
	s := testServer(t)

	res, err := s.handleGetPokemonDetails(context.Background(),
		callRequest("get_pokemon_details", map[string]any{"name": "missingno"}))
	require.NoError(t, err)

	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Could not find data for Pokémon 'missingno'.", resultText(t, res))
}

func TestSimulateBattle_SeededBattleIsReproducible(t *testing.T) {
	s := testServer(t, machamp(), rattata())
	args := map[string]any{
		"pokemon_one": "machamp",
		"pokemon_two": "rattata",
		"seed":        float64(42),
	}

	first, err := s.handleSimulateBattle(context.Background(), callRequest("simulate_battle", args))
	require.NoError(t, err)
	second, err := s.handleSimulateBattle(context.Background(), callRequest("simulate_battle", args))
	require.NoError(t, err)

	require.False(t, first.IsError)
	log := resultText(t, first)
	assert.Contains(t, log, "A battle is about to begin between Machamp and Rattata!")
	assert.Contains(t, log, "--- Battle Over! ---")
	assert.Contains(t, log, "The winner is: Machamp!")
	assert.Equal(t, log, resultText(t, second), "same seed replays the same log")
}

func TestSimulateBattle_MissingOpponent(t *testing.T) {
	s := testServer(t, machamp())

	res, err := s.handleSimulateBattle(context.Background(),
		callRequest("simulate_battle", map[string]any{"pokemon_one": "machamp"}))
	require.NoError(t, err)

	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Pokémon name is required.", resultText(t, res))
}

func TestSimulateBattle_UnknownOpponentReportedByName(t *testing.T) {
	s := testServer(t, machamp())

	res, err := s.handleSimulateBattle(context.Background(),
		callRequest("simulate_battle", map[string]any{
			"pokemon_one": "machamp",
			"pokemon_two": "missingno",
		}))
	require.NoError(t, err)

	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Could not find data for Pokémon 'missingno'.", resultText(t, res))
}

func TestSimulateBattle_UnknownStrategyListsRegistered(t *testing.T) {
	s := testServer(t, machamp(), rattata())

	res, err := s.handleSimulateBattle(context.Background(),
		callRequest("simulate_battle", map[string]any{
			"pokemon_one": "machamp",
			"pokemon_two": "rattata",
			"strategy":    "chaotic",
		}))
	require.NoError(t, err)

	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Unknown strategy 'chaotic'. Available strategies: aggressive, balanced.",
		resultText(t, res))
}

func TestSimulateBattle_FractionalSeedRejected(t *testing.T) {
	s := testServer(t, machamp(), rattata())

	res, err := s.handleSimulateBattle(context.Background(),
		callRequest("simulate_battle", map[string]any{
			"pokemon_one": "machamp",
			"pokemon_two": "rattata",
			"seed":        1.5,
		}))
	require.NoError(t, err)

	assert.True(t, res.IsError)
	assert.Equal(t, "Error: seed must be an integer.", resultText(t, res))
}

func TestSimulateBattle_UnseededStillCompletes(t *testing.T) {
	s := testServer(t, machamp(), rattata())

	res, err := s.handleSimulateBattle(context.Background(),
		callRequest("simulate_battle", map[string]any{
			"pokemon_one": "Machamp",
			"pokemon_two": "Rattata",
		}))
	require.NoError(t, err)

	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "The winner is: Machamp!")
}

func TestSeedValue(t *testing.T) {
	cases := []struct {
		name    string
		raw     any
		want    int64
		wantErr bool
	}{
		{name: "json float", raw: float64(1234), want: 1234},
		{name: "negative", raw: float64(-7), want: -7},
		{name: "zero", raw: float64(0), want: 0},
		{name: "int", raw: 99, want: 99},
		{name: "json.Number", raw: json.Number("314"), want: 314},
		{name: "fractional", raw: 0.25, wantErr: true},
		{name: "string", raw: "42", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := seedValue(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestServer_HandlesToolCallMessage drives a raw JSON-RPC tools/call through
// the MCP server, the same path both transports use.
func TestServer_HandlesToolCallMessage(t *testing.T) {
	s := testServer(t, machamp())
	ctx := context.Background()

	initialize := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`
	require.NotNil(t, s.mcp.HandleMessage(ctx, json.RawMessage(initialize)))

	call := `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_pokemon_details","arguments":{"name":"machamp"}}}`
	response := s.mcp.HandleMessage(ctx, json.RawMessage(call))
	require.NotNil(t, response)

	out, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Machamp")
	assert.Contains(t, string(out), "Cross Chop")
}

package typechart_test

import (
	"testing"

	"github.com/manav8826/MCP-pokemon/internal/game/typechart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var knownTypes = []string{
	"normal", "fire", "water", "electric", "grass", "ice", "fighting", "poison",
	"ground", "flying", "psychic", "bug", "rock", "ghost", "dragon", "dark",
	"steel", "fairy",
}

// TestLoad verifies the embedded chart parses and validates cleanly.
func TestLoad(t *testing.T) {
	c, err := typechart.Load()
	require.NoError(t, err, "embedded chart must load")
	require.NotNil(t, c)
}

// TestChart_Multiplier_KnownPairs spot-checks canonical matchups from every
// multiplier class.
func TestChart_Multiplier_KnownPairs(t *testing.T) {
	c := typechart.MustLoad()

	tests := []struct {
		attacking string
		defending string
		want      float64
	}{
		{"water", "fire", 2.0},
		{"fire", "water", 0.5},
		{"electric", "ground", 0.0},
		{"normal", "ghost", 0.0},
		{"ground", "flying", 0.0},
		{"dragon", "fairy", 0.0},
		{"poison", "steel", 0.0},
		{"psychic", "dark", 0.0},
		{"fighting", "ghost", 0.0},
		{"grass", "water", 2.0},
		{"ice", "dragon", 2.0},
		{"fairy", "dragon", 2.0},
		{"normal", "normal", 1.0},
		{"fire", "electric", 1.0},
	}
	for _, tt := range tests {
		got := c.Multiplier(tt.attacking, tt.defending)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.attacking, tt.defending)
	}
}

// TestChart_Multiplier_CaseInsensitive verifies Title-Cased record types hit
// the same chart rows.
func TestChart_Multiplier_CaseInsensitive(t *testing.T) {
	c := typechart.MustLoad()
	assert.Equal(t, 2.0, c.Multiplier("Water", "Fire"))
	assert.Equal(t, 0.0, c.Multiplier("ELECTRIC", "Ground"))
}

// TestChart_Multiplier_UnknownDefaultsToNeutral verifies the totality rule:
// any pair missing from the chart is 1.
func TestChart_Multiplier_UnknownDefaultsToNeutral(t *testing.T) {
	c := typechart.MustLoad()
	assert.Equal(t, 1.0, c.Multiplier("shadow", "fire"))
	assert.Equal(t, 1.0, c.Multiplier("fire", "shadow"))
	assert.Equal(t, 1.0, c.Multiplier("", ""))
}

// TestChart_Effectiveness_DualType verifies that dual-typed defenders compose
// multiplicatively.
func TestChart_Effectiveness_DualType(t *testing.T) {
	c := typechart.MustLoad()

	// electric vs water/flying: 2 * 2 = 4
	assert.Equal(t, 4.0, c.Effectiveness("electric", []string{"water", "flying"}))
	// fire vs water/dragon: 0.5 * 0.5 = 0.25
	assert.Equal(t, 0.25, c.Effectiveness("fire", []string{"water", "dragon"}))
	// ground vs electric/flying: 2 * 0 = 0
	assert.Equal(t, 0.0, c.Effectiveness("ground", []string{"electric", "flying"}))
	// grass vs fire/water: 0.5 * 2 = 1
	assert.Equal(t, 1.0, c.Effectiveness("grass", []string{"fire", "water"}))
}

// TestChart_Effectiveness_EmptyDefenderIsNeutral verifies the empty-product case.
func TestChart_Effectiveness_EmptyDefenderIsNeutral(t *testing.T) {
	c := typechart.MustLoad()
	assert.Equal(t, 1.0, c.Effectiveness("fire", nil))
}

// TestChart_Multiplier_Property verifies every multiplier over the full known
// matrix is drawn from the legal set, and that Effectiveness equals the
// product of per-type multipliers for arbitrary defender pairs.
func TestChart_Multiplier_Property(t *testing.T) {
	c := typechart.MustLoad()
	legal := map[float64]bool{0: true, 0.5: true, 1: true, 2: true}

	rapid.Check(t, func(rt *rapid.T) {
		attacking := rapid.SampledFrom(knownTypes).Draw(rt, "attacking")
		d1 := rapid.SampledFrom(knownTypes).Draw(rt, "d1")
		d2 := rapid.SampledFrom(knownTypes).Draw(rt, "d2")

		m1 := c.Multiplier(attacking, d1)
		m2 := c.Multiplier(attacking, d2)
		assert.True(rt, legal[m1], "multiplier %v for %s vs %s outside legal set", m1, attacking, d1)
		assert.True(rt, legal[m2], "multiplier %v for %s vs %s outside legal set", m2, attacking, d2)

		assert.Equal(rt, m1*m2, c.Effectiveness(attacking, []string{d1, d2}),
			"dual-type effectiveness must be the product of single-type multipliers")
	})
}

// TestDescribe covers the annotation boundaries, including the deliberate
// sharing of the resisted text by immune hits.
func TestDescribe(t *testing.T) {
	assert.Equal(t, "It's super effective!", typechart.Describe(2.0))
	assert.Equal(t, "It's super effective!", typechart.Describe(4.0))
	assert.Equal(t, "It's not very effective...", typechart.Describe(0.5))
	assert.Equal(t, "It's not very effective...", typechart.Describe(0.25))
	assert.Equal(t, "It's not very effective...", typechart.Describe(0.0))
	assert.Equal(t, "", typechart.Describe(1.0))
}

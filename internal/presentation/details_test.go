package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
	"github.com/manav8826/MCP-pokemon/internal/presentation"
)

func intp(v int) *int { return &v }

// TestFormatPokemonDetails_FullProfile pins the complete rendered profile
// byte for byte.
func TestFormatPokemonDetails_FullProfile(t *testing.T) {
	record := &pokedex.Pokemon{
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
		},
		EvolutionPaths: []string{"Charmander -> Charmeleon -> Charizard"},
		FlavorText:     "Spits fire that is hot enough to melt boulders.",
		EVYield:        "3 SPECIAL-ATTACK",
	}

	want := `🌟 **Charizard** (#006)
---
_Spits fire that is hot enough to melt boulders._

**🏷️ Type(s):** Fire / Flying
**🧠 Strategic Role:** ⚡ Fast Special Attacker: Focuses on striking first with powerful attacks.

**📊 Base Stats:**
- ❤️ **HP:** 78
- ⚔️ **Attack:** 84
- 🛡️ **Defense:** 78
- 🔮 **Sp. Atk:** 109
- 💠 **Sp. Def:** 85
- 💨 **Speed:** 100
- **📈 Total:** 534

**⚡ Abilities:** Blaze, Solar Power
**💪 Training Focus (EV Yield):** 3 SPECIAL-ATTACK

**🌱 Evolution Line(s):**
- Charmander -> Charmeleon -> Charizard

**🥊 Sample Moveset:**
- **Flamethrower** (Fire)
  - _Power: 90, Accuracy: 100_
  - Effect: Has a 10% chance to burn the target.`

	assert.Equal(t, want, presentation.FormatPokemonDetails(record))
}

// TestFormatPokemonDetails_NoEvolution: a record without evolution paths gets
// the does-not-evolve bullet.
func TestFormatPokemonDetails_NoEvolution(t *testing.T) {
	record := &pokedex.Pokemon{ID: 128, Name: "Tauros", Types: []string{"normal"}}
	out := presentation.FormatPokemonDetails(record)
	assert.Contains(t, out, "- Tauros does not evolve.")
}

// TestFormatPokemonDetails_MissingMoveNumbers: absent and zero power or
// accuracy both render N/A.
func TestFormatPokemonDetails_MissingMoveNumbers(t *testing.T) {
	record := &pokedex.Pokemon{
		ID: 39, Name: "Jigglypuff", Types: []string{"normal", "fairy"},
		Moves: []pokedex.Move{
			{Name: "Sing", Type: "normal", Accuracy: intp(55), Effect: "Puts the target to sleep."},
			{Name: "Pound", Type: "normal", Power: intp(40), Accuracy: intp(0), Effect: "Inflicts regular damage."},
		},
	}
	out := presentation.FormatPokemonDetails(record)
	assert.Contains(t, out, "  - _Power: N/A, Accuracy: 55_")
	assert.Contains(t, out, "  - _Power: 40, Accuracy: N/A_")
}

func TestStrategicRole(t *testing.T) {
	cases := []struct {
		name  string
		stats pokedex.Stats
		want  string
	}{
		{
			name:  "fast sweeper",
			stats: pokedex.Stats{HP: 60, Attack: 110, Defense: 60, SpecialAttack: 60, SpecialDefense: 60, Speed: 130},
			want:  "⚡ Fast Sweeper: Aims to out-speed and defeat opponents quickly.",
		},
		{
			name:  "bulky wall",
			stats: pokedex.Stats{HP: 110, Attack: 60, Defense: 120, SpecialAttack: 50, SpecialDefense: 90, Speed: 30},
			want:  "🛡️ Bulky Wall: Designed to withstand many hits and wear down the opponent.",
		},
		{
			name:  "fast physical attacker",
			stats: pokedex.Stats{HP: 70, Attack: 120, Defense: 60, SpecialAttack: 50, SpecialDefense: 60, Speed: 100},
			want:  "⚡ Fast Physical Attacker: Focuses on striking first with powerful attacks.",
		},
		{
			name:  "bulky special attacker",
			stats: pokedex.Stats{HP: 90, Attack: 50, Defense: 90, SpecialAttack: 120, SpecialDefense: 70, Speed: 60},
			want:  "🛡️ Bulky Special Attacker: Can take hits while dealing consistent damage.",
		},
		{
			name:  "balanced mixed attacker",
			stats: pokedex.Stats{HP: 70, Attack: 70, Defense: 70, SpecialAttack: 70, SpecialDefense: 70, Speed: 70},
			want:  "⚖️ Balanced Mixed Attacker: A versatile fighter with well-rounded stats.",
		},
		{
			// Speed 110 misses the sweeper cut; the attacker path still
			// reads the speed.
			name:  "sweeper threshold is strict",
			stats: pokedex.Stats{HP: 60, Attack: 110, Defense: 60, SpecialAttack: 60, SpecialDefense: 60, Speed: 110},
			want:  "⚡ Fast Physical Attacker: Focuses on striking first with powerful attacks.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, presentation.StrategicRole(&pokedex.Pokemon{Stats: tc.stats}))
		})
	}
}

// TestProperty_FormatPokemonDetails_AlwaysComplete verifies that any record
// renders a profile carrying the fixed section headers and one bullet per
// move.
func TestProperty_FormatPokemonDetails_AlwaysComplete(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		record := &pokedex.Pokemon{
			ID:    rapid.IntRange(1, 1025).Draw(rt, "id"),
			Name:  rapid.StringMatching(`[A-Z][a-z]{2,11}`).Draw(rt, "name"),
			Types: []string{rapid.SampledFrom([]string{"normal", "fire", "water", "grass"}).Draw(rt, "type")},
			Stats: pokedex.Stats{
				HP:             rapid.IntRange(1, 255).Draw(rt, "hp"),
				Attack:         rapid.IntRange(1, 255).Draw(rt, "atk"),
				Defense:        rapid.IntRange(1, 255).Draw(rt, "def"),
				SpecialAttack:  rapid.IntRange(1, 255).Draw(rt, "spa"),
				SpecialDefense: rapid.IntRange(1, 255).Draw(rt, "spd"),
				Speed:          rapid.IntRange(1, 255).Draw(rt, "spe"),
			},
		}
		moveCount := rapid.IntRange(0, 5).Draw(rt, "moves")
		for i := 0; i < moveCount; i++ {
			record.Moves = append(record.Moves, pokedex.Move{
				Name: rapid.StringMatching(`[A-Z][a-z]{2,11}`).Draw(rt, "move_name"),
				Type: "normal",
			})
		}

		out := presentation.FormatPokemonDetails(record)
		assert.Contains(rt, out, "**📊 Base Stats:**")
		assert.Contains(rt, out, "**🌱 Evolution Line(s):**")
		assert.Contains(rt, out, "**🥊 Sample Moveset:**")
		assert.Contains(rt, out, presentation.StrategicRole(record))
		for _, m := range record.Moves {
			assert.Contains(rt, out, "- **"+m.Name+"** (Normal)")
		}
	})
}

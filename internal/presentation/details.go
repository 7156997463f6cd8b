// Package presentation renders resolved records and battle reports as the
// markdown profiles the tools return.
package presentation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// FormatPokemonDetails renders the full markdown profile for a record:
// identity, typing, strategic role, base stats, abilities, EV yield,
// evolution lines, and the sampled moveset.
//
// Precondition: record is non-nil.
func FormatPokemonDetails(record *pokedex.Pokemon) string {
	types := make([]string, 0, len(record.Types))
	for _, t := range record.Types {
		types = append(types, capitalize(t))
	}

	lines := []string{
		fmt.Sprintf("🌟 **%s** (#%03d)", record.Name, record.ID),
		"---",
		fmt.Sprintf("_%s_", record.FlavorText),
		fmt.Sprintf("\n**🏷️ Type(s):** %s", strings.Join(types, " / ")),
		fmt.Sprintf("**🧠 Strategic Role:** %s\n", StrategicRole(record)),
		"**📊 Base Stats:**",
		fmt.Sprintf("- ❤️ **HP:** %d", record.Stats.HP),
		fmt.Sprintf("- ⚔️ **Attack:** %d", record.Stats.Attack),
		fmt.Sprintf("- 🛡️ **Defense:** %d", record.Stats.Defense),
		fmt.Sprintf("- 🔮 **Sp. Atk:** %d", record.Stats.SpecialAttack),
		fmt.Sprintf("- 💠 **Sp. Def:** %d", record.Stats.SpecialDefense),
		fmt.Sprintf("- 💨 **Speed:** %d", record.Stats.Speed),
		fmt.Sprintf("- **📈 Total:** %d\n", record.Stats.Total()),
		fmt.Sprintf("**⚡ Abilities:** %s", strings.Join(record.Abilities, ", ")),
		fmt.Sprintf("**💪 Training Focus (EV Yield):** %s\n", record.EVYield),
		"**🌱 Evolution Line(s):**",
	}

	if len(record.EvolutionPaths) > 0 {
		for _, path := range record.EvolutionPaths {
			lines = append(lines, fmt.Sprintf("- %s", path))
		}
	} else {
		lines = append(lines, fmt.Sprintf("- %s does not evolve.", record.Name))
	}

	lines = append(lines, "\n**🥊 Sample Moveset:**")
	for _, move := range record.Moves {
		lines = append(lines,
			fmt.Sprintf("- **%s** (%s)", move.Name, capitalize(move.Type)),
			fmt.Sprintf("  - _Power: %s, Accuracy: %s_", orNA(move.Power), orNA(move.Accuracy)),
			fmt.Sprintf("  - Effect: %s", move.Effect),
		)
	}

	return strings.Join(lines, "\n")
}

// StrategicRole classifies a record by its stat spread. Sweeper and wall
// checks run first; everything else gets an attacker archetype qualified by
// speed or bulk.
func StrategicRole(record *pokedex.Pokemon) string {
	s := record.Stats
	if s.Speed > 110 && (s.Attack > 100 || s.SpecialAttack > 100) {
		return "⚡ Fast Sweeper: Aims to out-speed and defeat opponents quickly."
	}
	if s.HP > 100 && (s.Defense > 100 || s.SpecialDefense > 100) {
		return "🛡️ Bulky Wall: Designed to withstand many hits and wear down the opponent."
	}

	role := "Mixed Attacker"
	switch {
	case s.Attack > s.SpecialAttack+15:
		role = "Physical Attacker"
	case s.SpecialAttack > s.Attack+15:
		role = "Special Attacker"
	}

	switch {
	case s.Speed > 95:
		return fmt.Sprintf("⚡ Fast %s: Focuses on striking first with powerful attacks.", role)
	case s.HP > 85 && (s.Defense > 85 || s.SpecialDefense > 85):
		return fmt.Sprintf("🛡️ Bulky %s: Can take hits while dealing consistent damage.", role)
	default:
		return fmt.Sprintf("⚖️ Balanced %s: A versatile fighter with well-rounded stats.", role)
	}
}

// orNA renders an optional stat, with both absent and zero values reading N/A.
func orNA(v *int) string {
	if v == nil || *v == 0 {
		return "N/A"
	}
	return strconv.Itoa(*v)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}

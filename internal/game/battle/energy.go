package battle

import "github.com/manav8826/MCP-pokemon/internal/pokedex"

// EnergyCost returns the energy tier a move costs, derived from its power.
// Powerless moves share the cheapest tier.
//
// Postcondition: returns one of 10, 20, 30, 40.
func EnergyCost(m pokedex.Move) int {
	power := m.PowerValue()
	switch {
	case power < 40:
		return 10
	case power < 70:
		return 20
	case power < 100:
		return 30
	default:
		return 40
	}
}

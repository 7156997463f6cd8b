package battle

import (
	"strings"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// MoveSelector picks the move a combatant uses this turn. Implementations
// must only return affordable moves; returning ok == false means the
// combatant Rests instead of moving.
type MoveSelector interface {
	SelectMove(model *DamageModel, attacker, defender *Combatant) (move pokedex.Move, ok bool)
}

// sacrificialNames is the move set the default policy refuses to pick.
// selfKONames is the subset that actually faints its user on execution;
// "final-gambit" is shunned by the default policy but carries no self-KO
// handling here.
var (
	sacrificialNames = map[string]bool{
		"self-destruct": true,
		"explosion":     true,
		"final-gambit":  true,
	}
	selfKONames = map[string]bool{
		"self-destruct": true,
		"explosion":     true,
	}
)

// Sacrificial reports whether the named move is in the self-sacrificing set.
// Matching is case-insensitive; record move names arrive Title-Cased.
func Sacrificial(name string) bool {
	return sacrificialNames[strings.ToLower(name)]
}

// SelfKO reports whether executing the named move faints its user.
func SelfKO(name string) bool {
	return selfKONames[strings.ToLower(name)]
}

// BalancedSelector is the default policy: among the affordable,
// non-sacrificial moves, pick the one with the highest predicted damage.
type BalancedSelector struct{}

// SelectMove implements MoveSelector.
//
// Postcondition: the returned move is affordable and non-sacrificial;
// ok == false iff no such move exists.
func (BalancedSelector) SelectMove(model *DamageModel, attacker, defender *Combatant) (pokedex.Move, bool) {
	return maxDamageMove(model, attacker, defender, false)
}

// AggressiveSelector maximizes predicted damage over every affordable move,
// sacrificial ones included. Under this policy the self-KO moves are live.
type AggressiveSelector struct{}

// SelectMove implements MoveSelector.
//
// Postcondition: the returned move is affordable; ok == false iff no move is.
func (AggressiveSelector) SelectMove(model *DamageModel, attacker, defender *Combatant) (pokedex.Move, bool) {
	return maxDamageMove(model, attacker, defender, true)
}

// maxDamageMove runs the shared maximization: filter to affordable candidates
// (optionally dropping the sacrificial set), predict damage for every
// candidate through the model, and keep the strict maximum. Ties and
// all-zero predictions keep the earliest candidate in record order.
//
// Predictions consume randomness draws exactly like real hits; with a seeded
// source the whole battle, selection included, replays identically.
func maxDamageMove(model *DamageModel, attacker, defender *Combatant, allowSacrificial bool) (pokedex.Move, bool) {
	var usable []pokedex.Move
	for _, m := range attacker.Record.Moves {
		if !attacker.CanAfford(m) {
			continue
		}
		if !allowSacrificial && Sacrificial(m.Name) {
			continue
		}
		usable = append(usable, m)
	}
	if len(usable) == 0 {
		return pokedex.Move{}, false
	}

	best := usable[0]
	maxDamage := 0
	for _, m := range usable {
		predicted, _ := model.Compute(attacker, defender, m)
		if predicted > maxDamage {
			maxDamage = predicted
			best = m
		}
	}
	return best, true
}

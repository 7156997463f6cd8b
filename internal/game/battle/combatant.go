// Package battle implements the turn-based combat core: combatant state,
// the damage and energy models, status conditions, move selection, and the
// round orchestrator that ties them together into a battle log.
package battle

import (
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// MaxEnergy is the energy ceiling every combatant starts at and can never exceed.
const MaxEnergy = 100

// RestGain is the energy restored by forfeiting a turn to Rest.
const RestGain = 50

// Combatant is the battle-local state for one side of a battle. It wraps a
// shared read-only record; every mutable quantity a battle touches lives here
// and dies with the battle.
type Combatant struct {
	Record *pokedex.Pokemon
	HP     int
	Energy int
	Status Status
}

// NewCombatant builds battle-ready state for rec: full HP, full energy, Healthy.
//
// Precondition: rec must be non-nil.
func NewCombatant(rec *pokedex.Pokemon) *Combatant {
	return &Combatant{
		Record: rec,
		HP:     rec.Stats.HP,
		Energy: MaxEnergy,
		Status: Healthy,
	}
}

// Name returns the display name from the wrapped record.
func (c *Combatant) Name() string { return c.Record.Name }

// MaxHP returns the HP ceiling from the wrapped record.
func (c *Combatant) MaxHP() int { return c.Record.Stats.HP }

// Fainted reports whether this combatant is out of the battle.
//
// Postcondition: Returns true iff HP <= 0.
func (c *Combatant) Fainted() bool { return c.HP <= 0 }

// ApplyDamage reduces HP by amount, flooring at zero.
//
// Precondition: amount must be >= 0.
// Postcondition: HP >= 0.
func (c *Combatant) ApplyDamage(amount int) {
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
}

// Faint drops the combatant to 0 HP immediately. Used by self-sacrificing moves.
func (c *Combatant) Faint() { c.HP = 0 }

// CanAfford reports whether the combatant has the energy to use m this turn.
func (c *Combatant) CanAfford(m pokedex.Move) bool {
	return EnergyCost(m) <= c.Energy
}

// SpendEnergy deducts cost from the energy pool.
//
// Precondition: cost must be affordable (cost <= Energy); only confirmed
// selections may be paid for.
// Postcondition: Energy >= 0.
func (c *Combatant) SpendEnergy(cost int) {
	if cost > c.Energy {
		panic("battle: SpendEnergy called with unaffordable cost")
	}
	c.Energy -= cost
}

// Rest restores RestGain energy, capped at MaxEnergy.
//
// Postcondition: Energy == min(MaxEnergy, old Energy + RestGain).
func (c *Combatant) Rest() {
	c.Energy += RestGain
	if c.Energy > MaxEnergy {
		c.Energy = MaxEnergy
	}
}

// EffectiveSpeed returns the speed used for turn ordering this round: the base
// speed stat scaled by the combatant's condition (Paralyzed halves it).
func (c *Combatant) EffectiveSpeed() float64 {
	return float64(c.Record.Stats.Speed) * statusTraits[c.Status].speedScale
}

package battle

import (
	"fmt"
	"strings"

	"github.com/manav8826/MCP-pokemon/internal/game/rng"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// Status is a combatant's persistent condition. The set is closed: a
// combatant is always in exactly one of these states, the first condition
// applied wins, and nothing cures or overwrites it for the rest of the battle.
type Status int

const (
	Healthy Status = iota
	Poisoned
	Burned
	Paralyzed
)

// String returns the display name shown in round status lines.
func (s Status) String() string {
	switch s {
	case Healthy:
		return "Healthy"
	case Poisoned:
		return "Poisoned"
	case Burned:
		return "Burned"
	case Paralyzed:
		return "Paralyzed"
	default:
		return "Unknown"
	}
}

// traits declares everything a condition does to its bearer. The engine code
// below only interprets these fields; adding a condition means adding a row.
type traits struct {
	inflictChance  float64 // on-hit roll; only a Healthy defender can acquire
	inflictedText  string  // log suffix when applied, e.g. "was poisoned!"
	skipChance     float64 // pre-turn chance the bearer loses its turn
	skipText       string  // log suffix when the turn is lost
	speedScale     float64 // multiplier on base speed for turn ordering
	halvesPhysical bool    // halves the physical offense stat in damage calc
	tickDivisor    int     // end-of-round damage = max(1, maxHP/tickDivisor); 0 = none
	tickText       string  // log suffix for the tick, e.g. "is hurt by poison!"
}

var statusTraits = map[Status]traits{
	Healthy: {speedScale: 1},
	Poisoned: {
		inflictChance: 0.30,
		inflictedText: "was poisoned!",
		speedScale:    1,
		tickDivisor:   8,
		tickText:      "is hurt by poison!",
	},
	Burned: {
		inflictChance:  0.10,
		inflictedText:  "was burned!",
		speedScale:     1,
		halvesPhysical: true,
		tickDivisor:    16,
		tickText:       "is hurt by its burn!",
	},
	Paralyzed: {
		inflictChance: 0.10,
		inflictedText: "was paralyzed!",
		skipChance:    0.25,
		skipText:      "is paralyzed! It can't move!",
		speedScale:    0.5,
	},
}

// conditionByType maps a move's element type to the condition it can inflict.
var conditionByType = map[string]Status{
	"poison":   Poisoned,
	"fire":     Burned,
	"electric": Paralyzed,
}

// InflictOnHit rolls for a condition on defender after move has landed.
// Only a Healthy defender can acquire a condition; the faint check runs
// after this, so a defender dropped to 0 HP by the hit can still be afflicted.
//
// Postcondition: returns the log line when a condition was applied, or ""
// when the defender was not Healthy, the move's type carries no condition,
// or the roll failed.
func InflictOnHit(src rng.Source, move pokedex.Move, defender *Combatant) string {
	if defender.Status != Healthy {
		return ""
	}
	st, ok := conditionByType[strings.ToLower(move.Type)]
	if !ok {
		return ""
	}
	tr := statusTraits[st]
	if !rng.Chance(src, tr.inflictChance) {
		return ""
	}
	defender.Status = st
	return fmt.Sprintf("%s %s", defender.Name(), tr.inflictedText)
}

// SkipsTurn rolls the pre-turn check for the actor's condition. A skipped
// turn costs nothing and restores nothing.
//
// Postcondition: returns the log line when the turn is lost, or "" when the
// actor may move. Conditions without a pre-turn check never consume a draw.
func SkipsTurn(src rng.Source, actor *Combatant) string {
	tr := statusTraits[actor.Status]
	if tr.skipChance == 0 {
		return ""
	}
	if !rng.Chance(src, tr.skipChance) {
		return ""
	}
	return fmt.Sprintf("%s %s", actor.Name(), tr.skipText)
}

// TickDamage applies the end-of-round damage for the combatant's condition.
//
// Postcondition: returns the log line when a tick was applied, or "" for
// conditions without one. Tick damage is at least 1 and scales off max HP,
// so it can faint the bearer.
func TickDamage(c *Combatant) string {
	tr := statusTraits[c.Status]
	if tr.tickDivisor == 0 {
		return ""
	}
	damage := c.MaxHP() / tr.tickDivisor
	if damage < 1 {
		damage = 1
	}
	c.ApplyDamage(damage)
	return fmt.Sprintf("%s %s [-%d HP]", c.Name(), tr.tickText, damage)
}

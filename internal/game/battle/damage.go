package battle

import (
	"strings"

	"github.com/manav8826/MCP-pokemon/internal/game/rng"
	"github.com/manav8826/MCP-pokemon/internal/game/typechart"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// physicalTypes is the classic physical/special split: moves of these element
// types use Attack vs Defense, everything else uses the special stat pair.
var physicalTypes = map[string]bool{
	"normal":   true,
	"fighting": true,
	"flying":   true,
	"poison":   true,
	"ground":   true,
	"rock":     true,
	"bug":      true,
	"ghost":    true,
	"steel":    true,
}

// Physical reports whether moves of element type t hit the physical stat pair.
func Physical(t string) bool {
	return physicalTypes[strings.ToLower(t)]
}

// DamageModel computes hit damage from the attacker's stats, the defender's
// typing, and a bounded random swing. One model is built per battle so every
// computation draws from the battle's randomness source.
type DamageModel struct {
	chart *typechart.Chart
	src   rng.Source
}

// NewDamageModel builds a model over the given chart and randomness source.
//
// Precondition: chart and src must be non-nil.
func NewDamageModel(chart *typechart.Chart, src rng.Source) *DamageModel {
	return &DamageModel{chart: chart, src: src}
}

// Compute returns the damage attacker deals to defender with move, plus the
// effectiveness annotation for the battle log. Stats are read from the
// records; a Burned attacker has its physical offense halved in the
// calculation only.
//
// Postcondition: damage >= 1 for damaging moves (immune hits included),
// damage == 0 with an empty annotation for powerless moves. Consumes exactly
// one randomness draw per damaging move and none for powerless ones.
func (d *DamageModel) Compute(attacker, defender *Combatant, move pokedex.Move) (int, string) {
	if !move.Damaging() {
		return 0, ""
	}

	var offense, defense float64
	if Physical(move.Type) {
		offense = float64(attacker.Record.Stats.Attack)
		defense = float64(defender.Record.Stats.Defense)
		if statusTraits[attacker.Status].halvesPhysical {
			offense /= 2
		}
	} else {
		offense = float64(attacker.Record.Stats.SpecialAttack)
		defense = float64(defender.Record.Stats.SpecialDefense)
	}

	// The +50 in the denominator damps blowouts against very low defense stats.
	ratio := offense / (defense + 50)
	base := float64(move.PowerValue()) * ratio * 1.5

	effectiveness := d.chart.Effectiveness(move.Type, defender.Record.Types)
	swing := rng.Uniform(d.src, 0.9, 1.1)

	damage := int(base * effectiveness * swing)
	if damage < 1 {
		damage = 1
	}
	return damage, typechart.Describe(effectiveness)
}

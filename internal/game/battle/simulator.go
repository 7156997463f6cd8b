package battle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manav8826/MCP-pokemon/internal/game/rng"
	"github.com/manav8826/MCP-pokemon/internal/game/typechart"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// DefaultMaxRounds is the round cap when the caller does not set one.
const DefaultMaxRounds = 50

// Simulator runs complete battles. Construction is cheap and one Simulator
// can run any number of battles; each Run gets its own selector and
// randomness source, so concurrent Runs never share mutable state.
type Simulator struct {
	chart     *typechart.Chart
	logger    *zap.Logger
	maxRounds int
}

// NewSimulator builds a Simulator over the given chart.
//
// Precondition: chart must be non-nil. A nil logger disables round tracing;
// maxRounds <= 0 selects DefaultMaxRounds.
func NewSimulator(chart *typechart.Chart, logger *zap.Logger, maxRounds int) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Simulator{chart: chart, logger: logger, maxRounds: maxRounds}
}

// Run simulates a full battle between the creatures described by rec1 and
// rec2 and returns the finished report. Run is total: any two records yield
// a complete log ending in a verdict, and nothing mutates the records.
//
// Postcondition: report.Rounds <= the configured cap; report.Winner is one
// of the two names or "Draw".
func (s *Simulator) Run(rec1, rec2 *pokedex.Pokemon, selector MoveSelector, src rng.Source) *Report {
	p1 := NewCombatant(rec1)
	p2 := NewCombatant(rec2)
	model := NewDamageModel(s.chart, src)

	battleID := uuid.NewString()
	start := time.Now()
	s.logger.Debug("battle starting",
		zap.String("battle_id", battleID),
		zap.String("pokemon_one", p1.Name()),
		zap.String("pokemon_two", p2.Name()),
	)

	lines := []string{
		fmt.Sprintf("A battle is about to begin between %s and %s!", p1.Name(), p2.Name()),
		"",
	}

	round := 0
	for !p1.Fainted() && !p2.Fainted() && round < s.maxRounds {
		round++
		lines = append(lines, fmt.Sprintf("--- Turn %d ---", round))

		// p1 wins exact speed ties.
		first, second := p1, p2
		if p1.EffectiveSpeed() < p2.EffectiveSpeed() {
			first, second = p2, p1
		}

		lines = append(lines, fmt.Sprintf("(%s: %d HP, %d E, %s) vs (%s: %d HP, %d E, %s)",
			p1.Name(), p1.HP, p1.Energy, p1.Status,
			p2.Name(), p2.HP, p2.Energy, p2.Status))

		for _, pair := range [2][2]*Combatant{{first, second}, {second, first}} {
			attacker, defender := pair[0], pair[1]
			if attacker.Fainted() {
				continue
			}

			if skipped := SkipsTurn(src, attacker); skipped != "" {
				lines = append(lines, skipped)
				continue
			}

			move, ok := selector.SelectMove(model, attacker, defender)
			if !ok {
				attacker.Rest()
				lines = append(lines, fmt.Sprintf("%s is low on energy and Rests! [+%d Energy]", attacker.Name(), RestGain))
				continue
			}

			attacker.SpendEnergy(EnergyCost(move))
			damage, note := model.Compute(attacker, defender, move)
			defender.ApplyDamage(damage)

			line := fmt.Sprintf("%s used %s! It dealt %d damage.", attacker.Name(), move.Name, damage)
			if note != "" {
				line += " " + note
			}
			lines = append(lines, line)
			s.logger.Debug("move resolved",
				zap.String("battle_id", battleID),
				zap.Int("round", round),
				zap.String("attacker", attacker.Name()),
				zap.String("move", move.Name),
				zap.Int("damage", damage),
			)

			if SelfKO(move.Name) {
				lines = append(lines, fmt.Sprintf("%s fainted after using its move!", attacker.Name()))
				attacker.Faint()
			}

			if applied := InflictOnHit(src, move, defender); applied != "" {
				lines = append(lines, applied)
			}

			if defender.Fainted() {
				lines = append(lines, fmt.Sprintf("%s has fainted!", defender.Name()))
				break
			}
		}

		// Ticks only run with both sides standing, but the second tick still
		// fires when the first one fainted its bearer.
		if !p1.Fainted() && !p2.Fainted() {
			for _, c := range [2]*Combatant{p1, p2} {
				if tick := TickDamage(c); tick != "" {
					lines = append(lines, tick)
				}
				if c.Fainted() {
					lines = append(lines, fmt.Sprintf("%s has fainted!", c.Name()))
				}
			}
		}

		lines = append(lines, "")
	}

	lines = append(lines, "--- Battle Over! ---")
	winner := "Draw"
	switch {
	case !p1.Fainted() && p2.Fainted():
		winner = p1.Name()
	case !p2.Fainted() && p1.Fainted():
		winner = p2.Name()
	}
	lines = append(lines, fmt.Sprintf("The winner is: %s!", winner))

	lines = append(lines, "\n---\n**Final Battle State:**")
	lines = append(lines, finalStateBlock(p1))
	lines = append(lines, "\n"+finalStateBlock(p2))

	s.logger.Info("battle complete",
		zap.String("battle_id", battleID),
		zap.String("winner", winner),
		zap.Int("rounds", round),
		zap.Duration("duration", time.Since(start)),
	)

	return &Report{
		ID:     battleID,
		Winner: winner,
		Rounds: round,
		Lines:  lines,
		P1:     p1,
		P2:     p2,
	}
}

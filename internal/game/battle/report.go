package battle

import (
	"fmt"
	"strings"
)

// Report is the structured outcome of one battle. Lines holds the complete
// human-readable log, opening line through final state; some entries span
// multiple display lines.
type Report struct {
	ID     string // correlation id, also attached to the simulator's log entries
	Winner string // victor's display name, or "Draw"
	Rounds int    // rounds actually played
	Lines  []string
	P1, P2 *Combatant // final state of both sides
}

// Log returns the full battle log as a single string.
func (r *Report) Log() string {
	return strings.Join(r.Lines, "\n")
}

// hpBarWidth is the cell count of the closing HP gauge.
const hpBarWidth = 20

// hpBar renders the HP gauge: filled cells proportional to remaining HP,
// truncated, padded with '-' to full width.
func hpBar(hp, maxHP int) string {
	filled := 0
	if maxHP > 0 {
		filled = int(float64(hp) / float64(maxHP) * hpBarWidth)
	}
	if filled < 0 {
		filled = 0
	}
	if filled > hpBarWidth {
		filled = hpBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("-", hpBarWidth-filled)
}

// finalStateBlock renders one combatant's closing summary block.
func finalStateBlock(c *Combatant) string {
	return fmt.Sprintf("**%s:**\n[%s] %d/%d HP\nEnergy Remaining: %d/%d",
		c.Name(), hpBar(c.HP, c.MaxHP()), c.HP, c.MaxHP(), c.Energy, MaxEnergy)
}

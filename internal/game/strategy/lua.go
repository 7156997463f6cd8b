package strategy

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/manav8826/MCP-pokemon/internal/game/battle"
	"github.com/manav8826/MCP-pokemon/internal/pokedex"
	"github.com/manav8826/MCP-pokemon/internal/scripting"
)

// ScriptCaller is the surface the Lua selector needs from the scripting
// manager.
type ScriptCaller interface {
	CallSelect(name string, args ...any) (lua.LValue, error)
}

// LuaSelector adapts a loaded strategy script to the MoveSelector interface.
// The script's select_move receives the attacker, the defender, and the
// attacker's moves as plain tables and returns a 1-based move index, or nil
// to rest. Script failures and invalid returns fall back to the balanced
// builtin so a broken script degrades instead of halting battles.
type LuaSelector struct {
	name     string
	caller   ScriptCaller
	fallback battle.MoveSelector
	logger   *zap.Logger
}

// NewLuaSelector constructs a selector bound to the named strategy script.
//
// Precondition: caller must be non-nil. A nil logger disables logging.
func NewLuaSelector(name string, caller ScriptCaller, logger *zap.Logger) *LuaSelector {
	if caller == nil {
		panic("strategy: NewLuaSelector called with nil caller")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LuaSelector{
		name:     name,
		caller:   caller,
		fallback: battle.BalancedSelector{},
		logger:   logger,
	}
}

// SelectMove implements MoveSelector. Damage predictions consume randomness
// draws exactly like the builtin policies.
func (s *LuaSelector) SelectMove(model *battle.DamageModel, attacker, defender *battle.Combatant) (pokedex.Move, bool) {
	moves := attacker.Record.Moves
	entries := make([]scripting.Table, len(moves))
	for i, m := range moves {
		predicted, _ := model.Compute(attacker, defender, m)
		entries[i] = scripting.Table{
			"name":        m.Name,
			"type":        m.Type,
			"power":       m.PowerValue(),
			"cost":        battle.EnergyCost(m),
			"damage":      predicted,
			"affordable":  attacker.CanAfford(m),
			"sacrificial": battle.Sacrificial(m.Name),
		}
	}

	ret, err := s.caller.CallSelect(s.name, snapshot(attacker), snapshot(defender), entries)
	if err != nil {
		s.logger.Warn("strategy script failed, using balanced fallback",
			zap.String("strategy", s.name),
			zap.Error(err),
		)
		return s.fallback.SelectMove(model, attacker, defender)
	}

	if ret == lua.LNil {
		return pokedex.Move{}, false
	}
	n, ok := ret.(lua.LNumber)
	if !ok {
		s.logger.Warn("strategy script returned non-numeric value, using balanced fallback",
			zap.String("strategy", s.name),
		)
		return s.fallback.SelectMove(model, attacker, defender)
	}

	idx := int(n)
	if float64(n) != float64(idx) || idx < 1 || idx > len(moves) {
		s.logger.Warn("strategy script returned invalid move index, using balanced fallback",
			zap.String("strategy", s.name),
			zap.Float64("index", float64(n)),
		)
		return s.fallback.SelectMove(model, attacker, defender)
	}
	chosen := moves[idx-1]
	if !attacker.CanAfford(chosen) {
		s.logger.Warn("strategy script picked an unaffordable move, using balanced fallback",
			zap.String("strategy", s.name),
			zap.String("move", chosen.Name),
			zap.Int("energy", attacker.Energy),
		)
		return s.fallback.SelectMove(model, attacker, defender)
	}
	return chosen, true
}

// snapshot converts a combatant to the table shape scripts receive.
func snapshot(c *battle.Combatant) scripting.Table {
	return scripting.Table{
		"name":   c.Name(),
		"hp":     c.HP,
		"max_hp": c.MaxHP(),
		"energy": c.Energy,
		"status": c.Status.String(),
		"speed":  c.EffectiveSpeed(),
	}
}

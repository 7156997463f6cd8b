package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Table is a plain string-keyed record converted to a Lua table at call time.
// Values may be Go numbers, strings, bools, nested Tables, or []Table slices.
type Table map[string]any

// toLValue converts a Go value to a Lua value allocated on L. []Table slices
// become 1-based array tables.
//
// Precondition: v must be nil, bool, int, int64, float64, string, Table, or
// []Table. Anything else panics.
func toLValue(L *lua.LState, v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(x)
	case int:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case string:
		return lua.LString(x)
	case Table:
		tbl := L.NewTable()
		for k, val := range x {
			L.SetField(tbl, k, toLValue(L, val))
		}
		return tbl
	case []Table:
		arr := L.NewTable()
		for _, item := range x {
			arr.Append(toLValue(L, item))
		}
		return arr
	default:
		panic(fmt.Sprintf("scripting: unsupported Lua argument type %T", v))
	}
}

// registerModules registers the host-side tables strategy scripts may call.
// Currently that is a single log.* table so scripts can emit structured
// diagnostics; everything else a script needs arrives as call arguments.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: log global is defined in L.
func (m *Manager) registerModules(L *lua.LState) {
	logTable := L.NewTable()
	L.SetField(logTable, "debug", L.NewFunction(func(ls *lua.LState) int {
		m.logger.Debug("strategy script", zap.String("message", ls.CheckString(1)))
		return 0
	}))
	L.SetField(logTable, "info", L.NewFunction(func(ls *lua.LState) int {
		m.logger.Info("strategy script", zap.String("message", ls.CheckString(1)))
		return 0
	}))
	L.SetField(logTable, "warn", L.NewFunction(func(ls *lua.LState) int {
		m.logger.Warn("strategy script", zap.String("message", ls.CheckString(1)))
		return 0
	}))
	L.SetGlobal("log", logTable)
}

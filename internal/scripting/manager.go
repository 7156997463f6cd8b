package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// SelectHook is the global function every strategy script must define.
const SelectHook = "select_move"

// scriptState pairs a strategy VM with the mutex that serializes calls into
// it; an LState is single-threaded.
type scriptState struct {
	mu sync.Mutex
	L  *lua.LState
}

// Manager owns one sandboxed LState per strategy script. Scripts are loaded
// once at startup; after that, concurrent CallSelect on different strategies
// runs in parallel while calls into the same strategy are serialized.
type Manager struct {
	mu        sync.RWMutex
	states    map[string]*scriptState
	instLimit int
	logger    *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: logger must be non-nil; instLimit <= 0 selects
// DefaultInstructionLimit for every call.
func NewManager(logger *zap.Logger, instLimit int) *Manager {
	if logger == nil {
		panic("scripting: NewManager called with nil logger")
	}
	return &Manager{
		states:    make(map[string]*scriptState),
		instLimit: instLimit,
		logger:    logger,
	}
}

// LoadDirectory loads every *.lua file in dir as one strategy each, keyed by
// file stem, in lexicographic order. Each file must define select_move.
//
// Precondition: dir must be a readable directory.
// Postcondition: returns the loaded strategy names; on error no partial state
// from the failing file is retained.
func (m *Manager) LoadDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading strategy dir %q: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	var names []string
	for _, path := range luaFiles {
		name := strings.TrimSuffix(filepath.Base(path), ".lua")
		if err := m.loadFile(name, path); err != nil {
			return nil, err
		}
		names = append(names, name)
		m.logger.Info("strategy script loaded",
			zap.String("strategy", name),
			zap.String("path", path),
		)
	}
	return names, nil
}

func (m *Manager) loadFile(name, path string) error {
	L := NewSandboxedState(m.instLimit)
	m.registerModules(L)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return fmt.Errorf("scripting: loading %q: %w", path, err)
	}
	if _, ok := L.GetGlobal(SelectHook).(*lua.LFunction); !ok {
		L.Close()
		return fmt.Errorf("scripting: %q does not define %s", path, SelectHook)
	}

	m.mu.Lock()
	if old, ok := m.states[name]; ok {
		old.L.Close()
	}
	m.states[name] = &scriptState{L: L}
	m.mu.Unlock()
	return nil
}

// Names returns the loaded strategy names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.states))
	for name := range m.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CallSelect invokes select_move in the named strategy's VM with a fresh
// opcode budget. Arguments are plain Go values converted to Lua values on the
// strategy's own state. Lua runtime errors are logged at Warn level and
// returned so the caller can fall back to a builtin policy.
//
// Precondition: args must be of types toLValue accepts.
// Postcondition: returns the hook's first return value, or an error when the
// strategy is unknown or the script fails.
func (m *Manager) CallSelect(name string, args ...any) (lua.LValue, error) {
	m.mu.RLock()
	st, ok := m.states[name]
	m.mu.RUnlock()
	if !ok {
		return lua.LNil, fmt.Errorf("scripting: unknown strategy %q", name)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	lvs := make([]lua.LValue, len(args))
	for i, a := range args {
		lvs[i] = toLValue(st.L, a)
	}

	ArmInstructionLimit(st.L, m.instLimit)
	if err := st.L.CallByParam(lua.P{
		Fn:      st.L.GetGlobal(SelectHook),
		NRet:    1,
		Protect: true,
	}, lvs...); err != nil {
		m.logger.Warn("strategy script error",
			zap.String("strategy", name),
			zap.Error(err),
		)
		return lua.LNil, fmt.Errorf("scripting: strategy %q: %w", name, err)
	}

	ret := st.L.Get(-1)
	st.L.Pop(1)
	return ret, nil
}

// Close releases every strategy VM.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range m.states {
		st.L.Close()
	}
	m.states = make(map[string]*scriptState)
}

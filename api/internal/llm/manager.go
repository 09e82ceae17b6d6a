package llm

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Manager keeps the configured backends and the backend chosen by each user.
type Manager struct {
	def      Generator
	backends map[string]Generator
	m        sync.Map // userID -> Generator
}

func NewManager(defaultBackend Generator, others ...Generator) *Manager {
	m := &Manager{def: defaultBackend, backends: map[string]Generator{}}
	m.backends[defaultBackend.Name()] = defaultBackend
	for _, g := range others {
		m.backends[g.Name()] = g
	}
	return m
}

// Get returns the user's backend, or the default.
func (m *Manager) Get(userID string) Generator {
	if v, ok := m.m.Load(userID); ok {
		return v.(Generator)
	}
	return m.def
}

// Set switches userID to the backend registered under name.
func (m *Manager) Set(userID, name string) (Generator, error) {
	g, ok := m.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q, available: %v", name, m.Names())
	}
	m.m.Store(userID, g)
	return g, nil
}

// Reset drops the user's choice.
func (m *Manager) Reset(userID string) {
	m.m.Delete(userID)
}

func (m *Manager) Default() Generator { return m.def }

func (m *Manager) Names() []string {
	out := lo.Keys(m.backends)
	sort.Strings(out)
	return out
}

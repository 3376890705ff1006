package bot

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager keeps the agents seated by an orchestrator, keyed by agent ID.
type Manager struct {
	mu     sync.RWMutex
	agents map[uuid.UUID]*Agent
	order  []uuid.UUID
	opts   []Option
	logger *zap.Logger
}

// NewManager creates a manager. opts are applied to every spawned agent
// before the per-call options.
func NewManager(opts ...Option) *Manager {
	return &Manager{
		agents: make(map[uuid.UUID]*Agent),
		opts:   opts,
		logger: buildOptions(opts).logger,
	}
}

// Spawn creates an agent playing the named strategy.
func (m *Manager) Spawn(strategy string, opts ...Option) (*Agent, error) {
	all := append(append([]Option{}, m.opts...), opts...)
	agent, err := NewAgentByName(strategy, all...)
	if err != nil {
		return nil, fmt.Errorf("spawn agent %q: %w", strategy, err)
	}

	m.mu.Lock()
	m.agents[agent.ID()] = agent
	m.order = append(m.order, agent.ID())
	m.mu.Unlock()

	m.logger.Info("bot spawned", zap.String("strategy", agent.Name()), zap.Stringer("agent_id", agent.ID()))
	return agent, nil
}

// Get returns the agent with id, or nil.
func (m *Manager) Get(id uuid.UUID) *Agent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.agents[id]
}

// Agents returns the agents in spawn order.
func (m *Manager) Agents() []*Agent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Agent, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.agents[id])
	}
	return out
}

// Remove stops tracking the agent with id.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	agent := m.agents[id]
	delete(m.agents, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	if agent != nil {
		m.logger.Info("bot removed", zap.String("strategy", agent.Name()), zap.Stringer("agent_id", id))
	}
}

// Count returns the number of tracked agents.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.agents)
}

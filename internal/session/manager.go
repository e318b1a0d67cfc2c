package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vampirenirmal/writecoach/internal/agent"
	"github.com/vampirenirmal/writecoach/internal/rubric"
)

// Manager creates and tracks active sessions. The map is shared across
// sessions and guarded by a mutex; each session's own state stays
// single-writer.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	client agent.Client
	opts   []SessionOption
}

// NewManager creates a session manager. The options are applied to every
// session it starts.
func NewManager(client agent.Client, opts ...SessionOption) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		client:   client,
		opts:     opts,
	}
}

// Start creates a session for a new writing interaction.
func (m *Manager) Start(genre rubric.Genre) *Session {
	s := New(uuid.New().String(), genre, m.client, m.opts...)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	return s
}

// Get looks up an active session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("unknown session %q", id)
	}
	return s, nil
}

// End discards a session and its feedback memory.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Active reports the number of live sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

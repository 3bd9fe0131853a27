// Package session models the dashboard's two-stage filter commit: a
// draft spec mutated by UI interactions and an applied spec used for
// computation, swapped atomically on an explicit apply. Both stages
// are immutable values; transitions replace them wholesale.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/thesixthai/brandpulse/internal/filter"
)

// Session is one dashboard session's filter state.
type Session struct {
	ID      string
	Draft   filter.Spec
	Applied filter.Spec
}

// Manager tracks filter state for independent dashboard sessions. It
// is safe for concurrent use; the engine itself stays stateless.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: map[string]Session{}}
}

// Create starts a session with both stages set to the default spec
// (typically just the snapshot's full date range).
func (m *Manager) Create(defaults filter.Spec) Session {
	s := Session{ID: uuid.NewString(), Draft: defaults, Applied: defaults}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session by id.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("unknown session %s", id)
	}
	return s, nil
}

// UpdateDraft replaces the draft spec. The applied spec — and thus any
// computation in flight — is untouched until Apply.
func (m *Manager) UpdateDraft(id string, draft filter.Spec) (Session, error) {
	return m.update(id, func(s Session) Session {
		s.Draft = draft
		return s
	})
}

// Apply commits the draft: the applied spec becomes a copy of it.
func (m *Manager) Apply(id string) (Session, error) {
	return m.update(id, func(s Session) Session {
		s.Applied = s.Draft
		return s
	})
}

// Clear resets both stages to the default spec.
func (m *Manager) Clear(id string, defaults filter.Spec) (Session, error) {
	return m.update(id, func(s Session) Session {
		s.Draft = defaults
		s.Applied = defaults
		return s
	})
}

// Drop forgets the session.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) update(id string, fn func(Session) Session) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("unknown session %s", id)
	}
	s = fn(s)
	m.sessions[id] = s
	return s, nil
}

package store

import (
	"context"
	"sync"

	"github.com/mentorlab/coachdesk/internal/model/session"
)

// MemoryStore keeps sessions in a process-local map. No persistence across
// restarts; the default backend and the reference for read-after-write
// behavior.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]session.State
}

// NewMemoryStore bootstraps an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]session.State)}
}

// Save upserts the session under its id. The stored value is a copy so the
// caller cannot alias stored turns afterwards.
func (s *MemoryStore) Save(_ context.Context, state session.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = state.Clone()
	return nil
}

// Get retrieves a session by exact id.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (session.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return session.State{}, false, nil
	}
	return state.Clone(), true, nil
}

package service

import (
	"sync"

	"github.com/Islam8171-lang/fryutt-bot/internal/domain"
)

// SessionStore holds per-user conversation state in memory.
// Safe for concurrent handlers; state lives for the process lifetime.
type SessionStore struct {
	mux    sync.RWMutex
	states map[int64]domain.SessionState
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{states: make(map[int64]domain.SessionState)}
}

// Get returns the user's current state; absent entry means Default
func (s *SessionStore) Get(userID int64) domain.SessionState {
	s.mux.RLock()
	defer s.mux.RUnlock()

	state, exists := s.states[userID]
	if !exists {
		return domain.StateDefault
	}
	return state
}

// Set sets the user's state
func (s *SessionStore) Set(userID int64, state domain.SessionState) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.states[userID] = state
}

// Reset returns the user to the default state
func (s *SessionStore) Reset(userID int64) {
	s.Set(userID, domain.StateDefault)
}

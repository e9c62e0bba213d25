package storage

import (
	"sync"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for game sessions by user ID.
// Sessions are copied on the way in and out so callers never share state.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.GameSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.GameSession),
	}
}

// Save stores a copy of the session under its user ID.
func (s *SessionStorage) Save(session *entities.GameSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = session.Clone()
}

// Get retrieves a copy of the session for a given user ID.
func (s *SessionStorage) Get(userID int64) (*entities.GameSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}
	return session.Clone(), true
}

// Delete removes the session for a given user ID.
func (s *SessionStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

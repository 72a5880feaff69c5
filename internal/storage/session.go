package storage

import (
	"sync"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

// SessionStorage keeps one page session per chat in memory.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.PageSession
}

// NewSessionStorage creates an empty SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.PageSession),
	}
}

// GetOrCreate returns the session for chatID, creating it on first use.
func (s *SessionStorage) GetOrCreate(chatID int64) *entities.PageSession {
	s.mu.RLock()
	sess, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[chatID]; ok {
		return sess
	}
	sess = entities.NewPageSession(chatID)
	s.sessions[chatID] = sess
	return sess
}

// Delete discards the session for chatID.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Range calls fn for every session until fn returns false.
// fn runs on a snapshot, so it may call back into the storage.
func (s *SessionStorage) Range(fn func(sess *entities.PageSession) bool) {
	s.mu.RLock()
	snapshot := make([]*entities.PageSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		snapshot = append(snapshot, sess)
	}
	s.mu.RUnlock()

	for _, sess := range snapshot {
		if !fn(sess) {
			return
		}
	}
}

package session

import (
	"sync"

	"github.com/mixelka/tempmailbot/pkg/models"
)

// Store maps Telegram user ids to their active mailbox session.
// Sessions are immutable values replaced wholesale, so a reader always sees
// a complete session or none. Writes for the same user are last-write-wins;
// the bot's update handling serializes a user's actions in practice.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]models.Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]models.Session),
	}
}

// Put stores the session for a user, replacing any previous one
func (s *Store) Put(userID int64, sess models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Get returns the user's session, if any
func (s *Store) Get(userID int64) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

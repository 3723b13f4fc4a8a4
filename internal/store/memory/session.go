package memory

import (
	"time"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CreateSession stores a server-side session keyed by its opaque token
func (s *Store) CreateSession(sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = ts
	}
	if sess.LastSeenAt.IsZero() {
		sess.LastSeenAt = ts
	}

	clone := *sess
	s.sessions[sess.Token] = &clone
	return nil
}

// GetSession retrieves a session by token
func (s *Store) GetSession(token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *sess
	return &clone, nil
}

// TouchSession records session activity, restarting the inactivity window
func (s *Store) TouchSession(token string, seenAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return store.ErrNotFound
	}
	sess.LastSeenAt = seenAt
	return nil
}

// DeleteSession removes a session. Deleting an absent token is not an error.
func (s *Store) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// DeleteExpiredSessions removes sessions whose last activity is before cutoff
func (s *Store) DeleteExpiredSessions(cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for token, sess := range s.sessions {
		if sess.LastSeenAt.Before(cutoff) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}

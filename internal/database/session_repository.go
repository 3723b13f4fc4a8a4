package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

const sessionColumns = `token, vendor_id, ip_address, device_os, browser, last_seen_at, created_at`

// SessionRepository handles database operations for login sessions
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession inserts a session keyed by its opaque token
func (r *SessionRepository) CreateSession(s *models.Session) error {
	query := `
		INSERT INTO sessions (token, vendor_id, ip_address, device_os, browser)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING last_seen_at, created_at
	`

	err := r.db.QueryRow(
		query,
		s.Token, s.VendorID, s.IPAddress, s.DeviceOS, s.Browser,
	).Scan(&s.LastSeenAt, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", translateError(err))
	}
	return nil
}

// GetSession retrieves a session by token
func (r *SessionRepository) GetSession(token string) (*models.Session, error) {
	session := &models.Session{}
	query := fmt.Sprintf(`SELECT %s FROM sessions WHERE token = $1`, sessionColumns)
	if err := r.db.Get(session, query, token); err != nil {
		return nil, translateError(err)
	}
	return session, nil
}

// TouchSession records session activity, restarting the inactivity window
func (r *SessionRepository) TouchSession(token string, seenAt time.Time) error {
	result, err := r.db.Exec(`UPDATE sessions SET last_seen_at = $2 WHERE token = $1`, token, seenAt)
	if err != nil {
		return translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteSession removes a session. Deleting an absent token is not an error.
func (r *SessionRepository) DeleteSession(token string) error {
	if _, err := r.db.Exec(`DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return translateError(err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions whose last activity is before cutoff
func (r *SessionRepository) DeleteExpiredSessions(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM sessions WHERE last_seen_at < $1`, cutoff)
	if err != nil {
		return 0, translateError(err)
	}
	return result.RowsAffected()
}

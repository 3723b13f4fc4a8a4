package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
	"github.com/zamtransit/vendor-portal-backend/internal/utils"
)

// ErrInvalidCredentials is returned for a wrong username or password.
// The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// SessionService manages vendor logins and server-side sessions
type SessionService struct {
	vendors  store.VendorStore
	sessions store.SessionStore
	ttl      time.Duration
	logger   *logrus.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(vendors store.VendorStore, sessions store.SessionStore, ttl time.Duration, logger *logrus.Logger) *SessionService {
	return &SessionService{
		vendors:  vendors,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// TTL returns the session inactivity window
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Login verifies the vendor's credentials and opens a new session.
// The session token is an opaque random value, never derived from
// vendor data.
func (s *SessionService) Login(username, password, clientIP, userAgent string) (*models.Vendor, *models.Session, error) {
	vendor, err := s.vendors.GetVendorByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up vendor: %w", err)
	}

	if !utils.CheckPassword(vendor.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.StartSession(vendor, clientIP, userAgent)
	if err != nil {
		return nil, nil, err
	}

	return vendor, session, nil
}

// StartSession opens a session for an already-authenticated vendor.
// Used directly after registration, where the credentials were just
// set and need no second verification.
func (s *SessionService) StartSession(vendor *models.Vendor, clientIP, userAgent string) (*models.Session, error) {
	device := utils.ParseUserAgent(userAgent)
	session := &models.Session{
		Token:     uuid.New().String(),
		VendorID:  vendor.ID,
		IPAddress: clientIP,
		DeviceOS:  device.OS,
		Browser:   device.Browser,
	}
	if err := s.sessions.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"vendor_id": vendor.ID,
		"username":  vendor.Username,
		"ip":        clientIP,
		"browser":   device.Browser,
	}).Info("Vendor logged in")

	return session, nil
}

// Authenticate resolves a session token to its vendor. A valid lookup
// counts as activity and restarts the inactivity window.
func (s *SessionService) Authenticate(token string, now time.Time) (*models.Vendor, error) {
	session, err := s.sessions.GetSession(token)
	if err != nil {
		return nil, err
	}

	if session.Expired(now, s.ttl) {
		// Lazy expiry; the sweep job handles the rest
		if err := s.sessions.DeleteSession(token); err != nil {
			s.logger.WithError(err).Warn("Failed to delete expired session")
		}
		return nil, store.ErrNotFound
	}

	if err := s.sessions.TouchSession(token, now); err != nil {
		return nil, err
	}

	return s.vendors.GetVendorByID(session.VendorID)
}

// Logout closes the session. Unknown tokens are ignored so logout is
// idempotent.
func (s *SessionService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

// SweepExpired removes sessions idle past the inactivity window
func (s *SessionService) SweepExpired(now time.Time) (int64, error) {
	return s.sessions.DeleteExpiredSessions(now.Add(-s.ttl))
}

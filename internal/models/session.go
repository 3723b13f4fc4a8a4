package models

import "time"

// Session represents a server-side login session. The token is an opaque
// value delivered to the client as a cookie; everything else stays on the
// server. A session expires after a fixed inactivity window measured from
// LastSeenAt.
type Session struct {
	Token      string    `json:"-" db:"token"`
	VendorID   int64     `json:"vendor_id" db:"vendor_id"`
	IPAddress  string    `json:"ip_address" db:"ip_address"`
	DeviceOS   string    `json:"device_os" db:"device_os"`
	Browser    string    `json:"browser" db:"browser"`
	LastSeenAt time.Time `json:"last_seen_at" db:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Expired reports whether the session has been inactive longer than ttl
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeenAt) > ttl
}

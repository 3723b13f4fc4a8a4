// Package memory implements the data-access layer with in-process maps.
// It is the default backend when no database is configured and the
// backend the handler tests run against.
//
// Identities are per-type counters starting at 1. A counter only ever
// moves forward, so identities are never reused, even after deletion.
// All operations take the store mutex, which keeps concurrent creates
// from producing duplicate identities or corrupting the collections.
package memory

import (
	"sync"
	"time"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

// Store holds every entity collection and the identity counters
type Store struct {
	mu sync.RWMutex

	vendorSeq   int64
	routeSeq    int64
	stopSeq     int64
	busSeq      int64
	tripSeq     int64
	customerSeq int64
	bookingSeq  int64
	paymentSeq  int64

	vendors   map[int64]*models.Vendor
	routes    map[int64]*models.Route
	stops     map[int64]*models.RouteStop
	buses     map[int64]*models.Bus
	trips     map[int64]*models.Trip
	customers map[int64]*models.Customer
	bookings  map[int64]*models.Booking
	payments  map[int64]*models.Payment
	sessions  map[string]*models.Session
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		vendors:   make(map[int64]*models.Vendor),
		routes:    make(map[int64]*models.Route),
		stops:     make(map[int64]*models.RouteStop),
		buses:     make(map[int64]*models.Bus),
		trips:     make(map[int64]*models.Trip),
		customers: make(map[int64]*models.Customer),
		bookings:  make(map[int64]*models.Booking),
		payments:  make(map[int64]*models.Payment),
		sessions:  make(map[string]*models.Session),
	}
}

// Ping reports store health; the memory backend is always reachable
func (s *Store) Ping() error {
	return nil
}

// Close releases backend resources; a no-op for the memory backend
func (s *Store) Close() error {
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}

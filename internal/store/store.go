package store

import (
	"errors"
	"time"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

// Sentinel errors shared by every backend. Absence of a record is a
// normal outcome, reported through ErrNotFound rather than a panic or a
// backend-specific error type.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrInUse             = errors.New("record is referenced by other records")
	ErrInsufficientSeats = errors.New("not enough available seats")
	ErrStopSequence      = errors.New("stop order conflicts with existing stops")
)

// VendorStore manages vendor accounts
type VendorStore interface {
	CreateVendor(v *models.Vendor) error
	GetVendorByID(id int64) (*models.Vendor, error)
	GetVendorByUsername(username string) (*models.Vendor, error)
	GetVendorByEmail(email string) (*models.Vendor, error)
	UpdateVendor(id int64, req *models.UpdateVendorRequest) (*models.Vendor, error)
}

// RouteStore manages routes and their ordered stops
type RouteStore interface {
	CreateRoute(r *models.Route) error
	GetRouteByID(id int64) (*models.Route, error)
	ListRoutesByVendor(vendorID int64) ([]models.Route, error)
	UpdateRoute(id int64, req *models.UpdateRouteRequest) (*models.Route, error)
	DeleteRoute(id int64) error

	CreateRouteStop(s *models.RouteStop) error
	ListStopsByRoute(routeID int64) ([]models.RouteStop, error)
}

// BusStore manages vehicles
type BusStore interface {
	CreateBus(b *models.Bus) error
	GetBusByID(id int64) (*models.Bus, error)
	ListBusesByVendor(vendorID int64) ([]models.Bus, error)
	UpdateBus(id int64, req *models.UpdateBusRequest) (*models.Bus, error)
	DeleteBus(id int64) error
}

// TripStore manages scheduled journeys
type TripStore interface {
	CreateTrip(t *models.Trip) error
	GetTripByID(id int64) (*models.Trip, error)
	ListTripsByVendor(vendorID int64) ([]models.Trip, error)
	UpdateTrip(id int64, req *models.UpdateTripRequest) (*models.Trip, error)
	DeleteTrip(id int64) error

	// UpcomingTrips returns trips for the vendor departing strictly after
	// now, soonest first, at most limit results.
	UpcomingTrips(vendorID int64, limit int, now time.Time) ([]models.Trip, error)

	// AdvanceTripStatuses moves scheduled trips whose departure has passed
	// to in_progress and in_progress trips whose arrival has passed to
	// completed. Cancelled trips are never touched. Returns the number of
	// trips changed.
	AdvanceTripStatuses(now time.Time) (int, error)
}

// CustomerStore manages end buyers
type CustomerStore interface {
	CreateCustomer(c *models.Customer) error
	GetCustomerByID(id int64) (*models.Customer, error)
	// GetCustomerByEmail returns the first customer with the given email.
	// Customer emails are not unique.
	GetCustomerByEmail(email string) (*models.Customer, error)
}

// BookingStore manages reservations. Creating a booking atomically
// decrements the trip's available seats; cancelling one restores them.
type BookingStore interface {
	CreateBooking(b *models.Booking) error
	GetBookingByID(id int64) (*models.Booking, error)
	ListBookingsByVendor(vendorID int64) ([]models.Booking, error)
	// RecentBookings returns the vendor's bookings sorted by booking time,
	// most recent first, at most limit results.
	RecentBookings(vendorID int64, limit int) ([]models.Booking, error)
	UpdateBookingStatus(id int64, status models.BookingStatus) (*models.Booking, error)
}

// PaymentStore manages monetary transactions
type PaymentStore interface {
	CreatePayment(p *models.Payment) error
	GetPaymentByID(id int64) (*models.Payment, error)
	ListPaymentsByVendor(vendorID int64) ([]models.Payment, error)
	UpdatePaymentStatus(id int64, status models.PaymentStatus) (*models.Payment, error)
}

// SessionStore manages server-side login sessions
type SessionStore interface {
	CreateSession(s *models.Session) error
	GetSession(token string) (*models.Session, error)
	TouchSession(token string, seenAt time.Time) error
	DeleteSession(token string) error
	// DeleteExpiredSessions removes sessions whose last activity is before
	// cutoff and returns how many were removed.
	DeleteExpiredSessions(cutoff time.Time) (int64, error)
}

// StatsStore computes dashboard aggregates
type StatsStore interface {
	DashboardStats(vendorID int64, now time.Time) (*models.DashboardStats, error)
}

// Store is the full data-access surface the application is wired with.
// The memory backend satisfies it directly; the Postgres backend
// assembles it from per-entity repositories.
type Store interface {
	VendorStore
	RouteStore
	BusStore
	TripStore
	CustomerStore
	BookingStore
	PaymentStore
	SessionStore
	StatsStore

	Ping() error
	Close() error
}

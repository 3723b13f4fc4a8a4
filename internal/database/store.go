package database

import "github.com/jmoiron/sqlx"

// Store assembles the per-entity repositories into the full data-access
// surface. Identity assignment is delegated to PostgreSQL sequences, so
// the monotonic, never-reused identity guarantee holds across processes.
type Store struct {
	db *sqlx.DB

	*VendorRepository
	*RouteRepository
	*BusRepository
	*TripRepository
	*CustomerRepository
	*BookingRepository
	*PaymentRepository
	*SessionRepository
	*StatsRepository
}

// NewStore creates a Postgres-backed store on an open connection pool
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:                 db,
		VendorRepository:   NewVendorRepository(db),
		RouteRepository:    NewRouteRepository(db),
		BusRepository:      NewBusRepository(db),
		TripRepository:     NewTripRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		BookingRepository:  NewBookingRepository(db),
		PaymentRepository:  NewPaymentRepository(db),
		SessionRepository:  NewSessionRepository(db),
		StatsRepository:    NewStatsRepository(db),
	}
}

// Ping verifies the database connection
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Close closes the underlying connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

const bookingColumns = `id, trip_id, customer_id, vendor_id, seat_count, status, total_price, booking_time, created_at, updated_at`

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking inserts a booking and decrements the trip's available
// seats in one transaction. The owning vendor is copied from the trip.
func (r *BookingRepository) CreateBooking(b *models.Booking) error {
	if b.SeatCount <= 0 {
		b.SeatCount = 1
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	trip := struct {
		VendorID       int64 `db:"vendor_id"`
		AvailableSeats int   `db:"available_seats"`
	}{}
	err = tx.Get(&trip, `SELECT vendor_id, available_seats FROM trips WHERE id = $1 FOR UPDATE`, b.TripID)
	if err != nil {
		return translateError(err)
	}
	if trip.AvailableSeats < b.SeatCount {
		return store.ErrInsufficientSeats
	}

	if _, err := tx.Exec(
		`UPDATE trips SET available_seats = available_seats - $2, updated_at = NOW() WHERE id = $1`,
		b.TripID, b.SeatCount,
	); err != nil {
		return translateError(err)
	}

	b.VendorID = trip.VendorID
	err = tx.QueryRow(`
		INSERT INTO bookings (trip_id, customer_id, vendor_id, seat_count, status, total_price, booking_time)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING id, booking_time, created_at, updated_at
	`, b.TripID, b.CustomerID, b.VendorID, b.SeatCount, b.Status, b.TotalPrice, nullTime(b.BookingTime),
	).Scan(&b.ID, &b.BookingTime, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", translateError(err))
	}

	return tx.Commit()
}

// GetBookingByID retrieves a booking by identity
func (r *BookingRepository) GetBookingByID(id int64) (*models.Booking, error) {
	booking := &models.Booking{}
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)
	if err := r.db.Get(booking, query, id); err != nil {
		return nil, translateError(err)
	}
	return booking, nil
}

// ListBookingsByVendor returns all bookings attributed to the vendor
func (r *BookingRepository) ListBookingsByVendor(vendorID int64) ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE vendor_id = $1 ORDER BY id`, bookingColumns)
	if err := r.db.Select(&bookings, query, vendorID); err != nil {
		return nil, translateError(err)
	}
	return bookings, nil
}

// RecentBookings returns the vendor's bookings, most recent first
func (r *BookingRepository) RecentBookings(vendorID int64, limit int) ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE vendor_id = $1
		ORDER BY booking_time DESC
		LIMIT $2
	`, bookingColumns)
	if err := r.db.Select(&bookings, query, vendorID, limit); err != nil {
		return nil, translateError(err)
	}
	return bookings, nil
}

// UpdateBookingStatus transitions a booking's status, returning seats to
// the trip on cancellation and taking them back on reinstatement.
func (r *BookingRepository) UpdateBookingStatus(id int64, status models.BookingStatus) (*models.Booking, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current := &models.Booking{}
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1 FOR UPDATE`, bookingColumns)
	if err := tx.Get(current, query, id); err != nil {
		return nil, translateError(err)
	}

	wasCancelled := current.Status == models.BookingStatusCancelled
	nowCancelled := status == models.BookingStatusCancelled

	if !wasCancelled && nowCancelled {
		if _, err := tx.Exec(
			`UPDATE trips SET available_seats = available_seats + $2, updated_at = NOW() WHERE id = $1`,
			current.TripID, current.SeatCount,
		); err != nil {
			return nil, translateError(err)
		}
	}
	if wasCancelled && !nowCancelled {
		result, err := tx.Exec(
			`UPDATE trips SET available_seats = available_seats - $2, updated_at = NOW() WHERE id = $1 AND available_seats >= $2`,
			current.TripID, current.SeatCount,
		)
		if err != nil {
			return nil, translateError(err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			// The trip may be gone; only a seat shortage blocks the change.
			var exists bool
			if err := tx.Get(&exists, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1)`, current.TripID); err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, translateError(err)
			}
			if exists {
				return nil, store.ErrInsufficientSeats
			}
		}
	}

	booking := &models.Booking{}
	query = fmt.Sprintf(`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING %s`, bookingColumns)
	if err := tx.Get(booking, query, id, status); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return booking, nil
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

const tripColumns = `id, vendor_id, route_id, bus_id, departure_time, arrival_time, status, available_seats, price, created_at, updated_at`

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip inserts a trip
func (r *TripRepository) CreateTrip(trip *models.Trip) error {
	if trip.Status == "" {
		trip.Status = models.TripStatusScheduled
	}

	query := `
		INSERT INTO trips (vendor_id, route_id, bus_id, departure_time, arrival_time, status, available_seats, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		trip.VendorID, trip.RouteID, trip.BusID, trip.DepartureTime,
		trip.ArrivalTime, trip.Status, trip.AvailableSeats, trip.Price,
	).Scan(&trip.ID, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", translateError(err))
	}
	return nil
}

// GetTripByID retrieves a trip by identity
func (r *TripRepository) GetTripByID(id int64) (*models.Trip, error) {
	trip := &models.Trip{}
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE id = $1`, tripColumns)
	if err := r.db.Get(trip, query, id); err != nil {
		return nil, translateError(err)
	}
	return trip, nil
}

// ListTripsByVendor returns all trips owned by the vendor
func (r *TripRepository) ListTripsByVendor(vendorID int64) ([]models.Trip, error) {
	trips := []models.Trip{}
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE vendor_id = $1 ORDER BY id`, tripColumns)
	if err := r.db.Select(&trips, query, vendorID); err != nil {
		return nil, translateError(err)
	}
	return trips, nil
}

// UpdateTrip applies a partial update and returns the updated trip
func (r *TripRepository) UpdateTrip(id int64, req *models.UpdateTripRequest) (*models.Trip, error) {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	appendField := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if req.DepartureTime != nil {
		appendField("departure_time", *req.DepartureTime)
	}
	if req.ArrivalTime != nil {
		appendField("arrival_time", *req.ArrivalTime)
	}
	if req.Status != nil {
		appendField("status", *req.Status)
	}
	if req.AvailableSeats != nil {
		appendField("available_seats", *req.AvailableSeats)
	}
	if req.Price != nil {
		appendField("price", *req.Price)
	}

	if len(updates) == 0 {
		return r.GetTripByID(id)
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE trips SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(updates, ", "), argCount, tripColumns)

	trip := &models.Trip{}
	if err := r.db.Get(trip, query, args...); err != nil {
		return nil, translateError(err)
	}
	return trip, nil
}

// DeleteTrip removes a trip
func (r *TripRepository) DeleteTrip(id int64) error {
	result, err := r.db.Exec(`DELETE FROM trips WHERE id = $1`, id)
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

// UpcomingTrips returns trips departing strictly after now, soonest first
func (r *TripRepository) UpcomingTrips(vendorID int64, limit int, now time.Time) ([]models.Trip, error) {
	trips := []models.Trip{}
	query := fmt.Sprintf(`
		SELECT %s FROM trips
		WHERE vendor_id = $1 AND departure_time > $2
		ORDER BY departure_time
		LIMIT $3
	`, tripColumns)
	if err := r.db.Select(&trips, query, vendorID, now, limit); err != nil {
		return nil, translateError(err)
	}
	return trips, nil
}

// AdvanceTripStatuses progresses trip lifecycle states past their
// departure and arrival times
func (r *TripRepository) AdvanceTripStatuses(now time.Time) (int, error) {
	result, err := r.db.Exec(`
		UPDATE trips SET
			status = CASE WHEN arrival_time <= $1 THEN 'completed' ELSE 'in_progress' END,
			updated_at = NOW()
		WHERE (status = 'scheduled' AND departure_time <= $1)
		   OR (status = 'in_progress' AND arrival_time <= $1)
	`, now)
	if err != nil {
		return 0, translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

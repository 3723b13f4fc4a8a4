package database

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

const statsWindow = 30 * 24 * time.Hour

// StatsRepository computes dashboard aggregates
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// DashboardStats computes the vendor dashboard aggregates. Change
// percentages compare the trailing 30 days against the 30 days before
// that and are nil when the prior window is empty.
func (r *StatsRepository) DashboardStats(vendorID int64, now time.Time) (*models.DashboardStats, error) {
	windowStart := now.Add(-statsWindow)
	prevStart := now.Add(-2 * statsWindow)

	bookingAgg := struct {
		Bookings       int `db:"bookings"`
		Passengers     int `db:"passengers"`
		CurBookings    int `db:"cur_bookings"`
		PrevBookings   int `db:"prev_bookings"`
		CurPassengers  int `db:"cur_passengers"`
		PrevPassengers int `db:"prev_passengers"`
	}{}
	err := r.db.Get(&bookingAgg, `
		SELECT
			COUNT(*) AS bookings,
			COALESCE(SUM(seat_count), 0) AS passengers,
			COUNT(*) FILTER (WHERE booking_time >= $2 AND booking_time <= $3) AS cur_bookings,
			COUNT(*) FILTER (WHERE booking_time >= $4 AND booking_time < $2) AS prev_bookings,
			COALESCE(SUM(seat_count) FILTER (WHERE booking_time >= $2 AND booking_time <= $3), 0) AS cur_passengers,
			COALESCE(SUM(seat_count) FILTER (WHERE booking_time >= $4 AND booking_time < $2), 0) AS prev_passengers
		FROM bookings
		WHERE vendor_id = $1
	`, vendorID, windowStart, now, prevStart)
	if err != nil {
		return nil, translateError(err)
	}

	var activeTrips int
	err = r.db.Get(&activeTrips, `
		SELECT COUNT(*) FROM trips
		WHERE vendor_id = $1 AND departure_time <= $2 AND arrival_time >= $2
	`, vendorID, now)
	if err != nil {
		return nil, translateError(err)
	}

	revenueAgg := struct {
		Revenue     float64 `db:"revenue"`
		CurRevenue  float64 `db:"cur_revenue"`
		PrevRevenue float64 `db:"prev_revenue"`
	}{}
	err = r.db.Get(&revenueAgg, `
		SELECT
			COALESCE(SUM(amount), 0) AS revenue,
			COALESCE(SUM(amount) FILTER (WHERE payment_time >= $2 AND payment_time <= $3), 0) AS cur_revenue,
			COALESCE(SUM(amount) FILTER (WHERE payment_time >= $4 AND payment_time < $2), 0) AS prev_revenue
		FROM payments
		WHERE vendor_id = $1 AND status = 'completed'
	`, vendorID, windowStart, now, prevStart)
	if err != nil {
		return nil, translateError(err)
	}

	stats := &models.DashboardStats{
		TotalPassengers: bookingAgg.Passengers,
		ActiveTrips:     activeTrips,
		Revenue:         revenueAgg.Revenue,
		Bookings:        bookingAgg.Bookings,
	}
	stats.BookingsChangePct = changePct(float64(bookingAgg.CurBookings), float64(bookingAgg.PrevBookings))
	stats.PassengersChangePct = changePct(float64(bookingAgg.CurPassengers), float64(bookingAgg.PrevPassengers))
	stats.RevenueChangePct = changePct(revenueAgg.CurRevenue, revenueAgg.PrevRevenue)
	return stats, nil
}

func changePct(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (current - previous) / previous * 100
	return &pct
}

package memory

import (
	"time"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

const statsWindow = 30 * 24 * time.Hour

// DashboardStats computes the vendor dashboard aggregates:
//
//   - total passengers: sum of seat counts over all of the vendor's
//     bookings, regardless of status
//   - active trips: trips whose window [departure, arrival] contains now
//   - revenue: sum of completed payment amounts
//   - bookings: count of all of the vendor's bookings
//
// Change percentages compare the trailing 30 days against the 30 days
// before that and are nil when the prior window is empty.
func (s *Store) DashboardStats(vendorID int64, ref time.Time) (*models.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.DashboardStats{}

	var curBookings, prevBookings int
	var curPassengers, prevPassengers int
	windowStart := ref.Add(-statsWindow)
	prevStart := ref.Add(-2 * statsWindow)

	for _, b := range s.bookings {
		if b.VendorID != vendorID {
			continue
		}
		stats.Bookings++
		stats.TotalPassengers += b.SeatCount

		switch {
		case !b.BookingTime.Before(windowStart) && !b.BookingTime.After(ref):
			curBookings++
			curPassengers += b.SeatCount
		case !b.BookingTime.Before(prevStart) && b.BookingTime.Before(windowStart):
			prevBookings++
			prevPassengers += b.SeatCount
		}
	}

	for _, t := range s.trips {
		if t.VendorID != vendorID {
			continue
		}
		if !ref.Before(t.DepartureTime) && !ref.After(t.ArrivalTime) {
			stats.ActiveTrips++
		}
	}

	var curRevenue, prevRevenue float64
	for _, p := range s.payments {
		if p.VendorID != vendorID || p.Status != models.PaymentStatusCompleted {
			continue
		}
		stats.Revenue += p.Amount

		switch {
		case !p.PaymentTime.Before(windowStart) && !p.PaymentTime.After(ref):
			curRevenue += p.Amount
		case !p.PaymentTime.Before(prevStart) && p.PaymentTime.Before(windowStart):
			prevRevenue += p.Amount
		}
	}

	stats.BookingsChangePct = changePct(float64(curBookings), float64(prevBookings))
	stats.PassengersChangePct = changePct(float64(curPassengers), float64(prevPassengers))
	stats.RevenueChangePct = changePct(curRevenue, prevRevenue)

	return stats, nil
}

func changePct(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (current - previous) / previous * 100
	return &pct
}

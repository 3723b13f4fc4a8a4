package models

// DashboardStats holds the aggregate numbers shown on the vendor dashboard.
//
// Change percentages compare the trailing 30 days against the 30 days
// before that. They are nil when the prior window has no data, so the
// client can distinguish "no change" from "nothing to compare against".
type DashboardStats struct {
	TotalPassengers int     `json:"total_passengers"`
	ActiveTrips     int     `json:"active_trips"`
	Revenue         float64 `json:"revenue"`
	Bookings        int     `json:"bookings"`

	PassengersChangePct *float64 `json:"passengers_change_pct,omitempty"`
	RevenueChangePct    *float64 `json:"revenue_change_pct,omitempty"`
	BookingsChangePct   *float64 `json:"bookings_change_pct,omitempty"`
}

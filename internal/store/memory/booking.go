package memory

import (
	"sort"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CreateBooking stores a new booking and decrements the trip's available
// seats in the same critical section. The owning vendor is taken from
// the trip, never from the caller.
func (s *Store) CreateBooking(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.trips[b.TripID]
	if !ok {
		return store.ErrNotFound
	}
	if b.SeatCount <= 0 {
		b.SeatCount = 1
	}
	if trip.AvailableSeats < b.SeatCount {
		return store.ErrInsufficientSeats
	}

	s.bookingSeq++
	b.ID = s.bookingSeq
	b.VendorID = trip.VendorID
	ts := now()
	if b.BookingTime.IsZero() {
		b.BookingTime = ts
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	b.CreatedAt = ts
	b.UpdatedAt = ts

	trip.AvailableSeats -= b.SeatCount
	trip.UpdatedAt = ts

	clone := *b
	s.bookings[b.ID] = &clone
	return nil
}

// GetBookingByID retrieves a booking by identity
func (s *Store) GetBookingByID(id int64) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

// ListBookingsByVendor returns all bookings attributed to the vendor in
// insertion order
func (s *Store) ListBookingsByVendor(vendorID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []models.Booking{}
	for _, b := range s.bookings {
		if b.VendorID == vendorID {
			bookings = append(bookings, *b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

// RecentBookings returns the vendor's bookings, most recent booking time
// first, at most limit results
func (s *Store) RecentBookings(vendorID int64, limit int) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []models.Booking{}
	for _, b := range s.bookings {
		if b.VendorID == vendorID {
			bookings = append(bookings, *b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingTime.After(bookings[j].BookingTime)
	})
	if limit > 0 && len(bookings) > limit {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

// UpdateBookingStatus transitions a booking's status. Cancelling returns
// the booked seats to the trip; leaving the cancelled state takes them
// back, failing with ErrInsufficientSeats when the trip no longer has
// room.
func (s *Store) UpdateBookingStatus(id int64, status models.BookingStatus) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	trip := s.trips[b.TripID]
	wasCancelled := b.Status == models.BookingStatusCancelled
	nowCancelled := status == models.BookingStatusCancelled

	if trip != nil && !wasCancelled && nowCancelled {
		trip.AvailableSeats += b.SeatCount
		trip.UpdatedAt = now()
	}
	if trip != nil && wasCancelled && !nowCancelled {
		if trip.AvailableSeats < b.SeatCount {
			return nil, store.ErrInsufficientSeats
		}
		trip.AvailableSeats -= b.SeatCount
		trip.UpdatedAt = now()
	}

	b.Status = status
	b.UpdatedAt = now()

	clone := *b
	return &clone, nil
}

package memory

import (
	"sort"
	"time"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CreateTrip stores a new trip, assigning its identity and timestamps
func (s *Store) CreateTrip(t *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tripSeq++
	t.ID = s.tripSeq
	ts := now()
	t.CreatedAt = ts
	t.UpdatedAt = ts
	if t.Status == "" {
		t.Status = models.TripStatusScheduled
	}

	clone := *t
	s.trips[t.ID] = &clone
	return nil
}

// GetTripByID retrieves a trip by identity
func (s *Store) GetTripByID(id int64) (*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trips[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

// ListTripsByVendor returns all trips owned by the vendor in insertion order
func (s *Store) ListTripsByVendor(vendorID int64) ([]models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := []models.Trip{}
	for _, t := range s.trips {
		if t.VendorID == vendorID {
			trips = append(trips, *t)
		}
	}
	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })
	return trips, nil
}

// UpdateTrip merges the supplied fields over the stored trip
func (s *Store) UpdateTrip(id int64, req *models.UpdateTripRequest) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trips[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if req.DepartureTime != nil {
		t.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		t.ArrivalTime = *req.ArrivalTime
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.AvailableSeats != nil {
		t.AvailableSeats = *req.AvailableSeats
	}
	if req.Price != nil {
		t.Price = *req.Price
	}
	t.UpdatedAt = now()

	clone := *t
	return &clone, nil
}

// DeleteTrip removes a trip. A trip with bookings cannot be deleted.
func (s *Store) DeleteTrip(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[id]; !ok {
		return store.ErrNotFound
	}
	for _, b := range s.bookings {
		if b.TripID == id {
			return store.ErrInUse
		}
	}
	delete(s.trips, id)
	return nil
}

// UpcomingTrips returns trips departing strictly after now, soonest first
func (s *Store) UpcomingTrips(vendorID int64, limit int, ref time.Time) ([]models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := []models.Trip{}
	for _, t := range s.trips {
		if t.VendorID == vendorID && t.DepartureTime.After(ref) {
			trips = append(trips, *t)
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].DepartureTime.Before(trips[j].DepartureTime)
	})
	if limit > 0 && len(trips) > limit {
		trips = trips[:limit]
	}
	return trips, nil
}

// AdvanceTripStatuses progresses trip lifecycle states past their
// departure and arrival times. Cancelled trips are never touched.
func (s *Store) AdvanceTripStatuses(ref time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for _, t := range s.trips {
		switch t.Status {
		case models.TripStatusScheduled:
			if !t.ArrivalTime.After(ref) {
				t.Status = models.TripStatusCompleted
			} else if !t.DepartureTime.After(ref) {
				t.Status = models.TripStatusInProgress
			} else {
				continue
			}
		case models.TripStatusInProgress:
			if t.ArrivalTime.After(ref) {
				continue
			}
			t.Status = models.TripStatusCompleted
		default:
			continue
		}
		t.UpdatedAt = now()
		changed++
	}
	return changed, nil
}

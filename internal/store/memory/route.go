package memory

import (
	"sort"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CreateRoute stores a new route, assigning its identity and timestamps
func (s *Store) CreateRoute(r *models.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.routeSeq++
	r.ID = s.routeSeq
	ts := now()
	r.CreatedAt = ts
	r.UpdatedAt = ts

	clone := *r
	s.routes[r.ID] = &clone
	return nil
}

// GetRouteByID retrieves a route by identity
func (s *Store) GetRouteByID(id int64) (*models.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.routes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *r
	return &clone, nil
}

// ListRoutesByVendor returns all routes owned by the vendor in insertion order
func (s *Store) ListRoutesByVendor(vendorID int64) ([]models.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	routes := []models.Route{}
	for _, r := range s.routes {
		if r.VendorID == vendorID {
			routes = append(routes, *r)
		}
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].ID < routes[j].ID })
	return routes, nil
}

// UpdateRoute merges the supplied fields over the stored route. The
// owning vendor, identity and creation timestamp never change.
func (s *Store) UpdateRoute(id int64, req *models.UpdateRouteRequest) (*models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.routes[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if req.Origin != nil {
		r.Origin = *req.Origin
	}
	if req.Destination != nil {
		r.Destination = *req.Destination
	}
	if req.DistanceKM != nil {
		r.DistanceKM = req.DistanceKM
	}
	if req.DurationMinutes != nil {
		r.DurationMinutes = req.DurationMinutes
	}
	if req.Price != nil {
		r.Price = *req.Price
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	r.UpdatedAt = now()

	clone := *r
	return &clone, nil
}

// DeleteRoute removes a route and its stops. A route with scheduled
// trips cannot be deleted.
func (s *Store) DeleteRoute(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.routes[id]; !ok {
		return store.ErrNotFound
	}
	for _, t := range s.trips {
		if t.RouteID == id {
			return store.ErrInUse
		}
	}
	delete(s.routes, id)
	for stopID, stop := range s.stops {
		if stop.RouteID == id {
			delete(s.stops, stopID)
		}
	}
	return nil
}

// CreateRouteStop stores a new stop for a route. Stops on a route are
// unique in order index and monotonically increasing in distance from
// the origin.
func (s *Store) CreateRouteStop(stop *models.RouteStop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	route, ok := s.routes[stop.RouteID]
	if !ok {
		return store.ErrNotFound
	}

	for _, existing := range s.stops {
		if existing.RouteID != stop.RouteID {
			continue
		}
		if existing.StopOrder == stop.StopOrder {
			return store.ErrDuplicate
		}
		if existing.StopOrder < stop.StopOrder && existing.DistanceKM >= stop.DistanceKM {
			return store.ErrStopSequence
		}
		if existing.StopOrder > stop.StopOrder && existing.DistanceKM <= stop.DistanceKM {
			return store.ErrStopSequence
		}
	}

	s.stopSeq++
	stop.ID = s.stopSeq
	stop.CreatedAt = now()

	clone := *stop
	s.stops[stop.ID] = &clone

	route.HasStops = true
	route.UpdatedAt = now()
	return nil
}

// ListStopsByRoute returns the stops of a route ordered by stop order
func (s *Store) ListStopsByRoute(routeID int64) ([]models.RouteStop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stops := []models.RouteStop{}
	for _, stop := range s.stops {
		if stop.RouteID == routeID {
			stops = append(stops, *stop)
		}
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i].StopOrder < stops[j].StopOrder })
	return stops, nil
}

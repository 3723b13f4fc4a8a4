package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// TripHandler handles scheduled journeys
type TripHandler struct {
	trips  store.TripStore
	routes store.RouteStore
	buses  store.BusStore
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(trips store.TripStore, routes store.RouteStore, buses store.BusStore) *TripHandler {
	return &TripHandler{trips: trips, routes: routes, buses: buses}
}

func (h *TripHandler) getOwnedTrip(c *gin.Context, id, vendorID int64) (*models.Trip, bool) {
	trip, err := h.trips.GetTripByID(id)
	if err != nil {
		storeError(c, err, "Trip")
		return nil, false
	}
	if trip.VendorID != vendorID {
		notFound(c, "Trip")
		return nil, false
	}
	return trip, true
}

// ListTrips returns all trips owned by the vendor
// GET /api/trips
func (h *TripHandler) ListTrips(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	trips, err := h.trips.ListTripsByVendor(vc.VendorID)
	if err != nil {
		storeError(c, err, "Trip")
		return
	}

	c.JSON(http.StatusOK, trips)
}

// UpcomingTrips returns trips departing after now, soonest first
// GET /api/trips/upcoming?limit=N
func (h *TripHandler) UpcomingTrips(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	limit := queryLimit(c, 5, 50)
	trips, err := h.trips.UpcomingTrips(vc.VendorID, limit, time.Now().UTC())
	if err != nil {
		storeError(c, err, "Trip")
		return
	}

	c.JSON(http.StatusOK, trips)
}

// GetTrip returns one trip
// GET /api/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	trip, ok := h.getOwnedTrip(c, id, vc.VendorID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, trip)
}

// CreateTrip schedules a trip on one of the vendor's routes using one
// of its buses. Seats default to the bus capacity and may not exceed
// it; price defaults to the route price.
// POST /api/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.routes.GetRouteByID(req.RouteID)
	if err != nil {
		storeError(c, err, "Route")
		return
	}
	if route.VendorID != vc.VendorID {
		notFound(c, "Route")
		return
	}

	bus, err := h.buses.GetBusByID(req.BusID)
	if err != nil {
		storeError(c, err, "Bus")
		return
	}
	if bus.VendorID != vc.VendorID {
		notFound(c, "Bus")
		return
	}

	seats := bus.Capacity
	if req.AvailableSeats != nil {
		if *req.AvailableSeats > bus.Capacity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available_seats exceeds bus capacity"})
			return
		}
		seats = *req.AvailableSeats
	}

	// An omitted price inherits the route price; an explicit zero stands
	price := route.Price
	if req.Price != nil {
		price = *req.Price
	}

	trip := &models.Trip{
		VendorID:       vc.VendorID,
		RouteID:        req.RouteID,
		BusID:          req.BusID,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		Status:         models.TripStatusScheduled,
		AvailableSeats: seats,
		Price:          price,
	}
	if err := h.trips.CreateTrip(trip); err != nil {
		storeError(c, err, "Trip")
		return
	}

	c.JSON(http.StatusCreated, trip)
}

// UpdateTrip applies a partial update to a trip
// PATCH /api/trips/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, ok := h.getOwnedTrip(c, id, vc.VendorID)
	if !ok {
		return
	}

	// Departure and arrival must stay consistent when only one moves
	if req.DepartureTime != nil && req.ArrivalTime == nil && !current.ArrivalTime.After(*req.DepartureTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "departure_time must be before arrival_time"})
		return
	}
	if req.ArrivalTime != nil && req.DepartureTime == nil && !req.ArrivalTime.After(current.DepartureTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arrival_time must be after departure_time"})
		return
	}

	trip, err := h.trips.UpdateTrip(id, &req)
	if err != nil {
		storeError(c, err, "Trip")
		return
	}

	c.JSON(http.StatusOK, trip)
}

// DeleteTrip removes a trip
// DELETE /api/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, ok := h.getOwnedTrip(c, id, vc.VendorID); !ok {
		return
	}

	if err := h.trips.DeleteTrip(id); err != nil {
		storeError(c, err, "Trip")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}

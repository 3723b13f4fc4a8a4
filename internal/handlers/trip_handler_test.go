package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

func TestCreateTripHandler(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.registerAndLogin(t, "tripco")
	route := env.seedRoute(t, cookie)
	bus := env.seedBus(t, cookie, 44)

	dep := time.Now().UTC().Add(24 * time.Hour)

	t.Run("Defaults From Bus And Route", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/trips", gin.H{
			"route_id":       route.ID,
			"bus_id":         bus.ID,
			"departure_time": dep.Format(time.RFC3339),
			"arrival_time":   dep.Add(7 * time.Hour).Format(time.RFC3339),
		}, cookie)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var trip models.Trip
		decode(t, w, &trip)
		assert.Equal(t, models.TripStatusScheduled, trip.Status)
		assert.Equal(t, 44, trip.AvailableSeats)
		assert.Equal(t, 350.0, trip.Price)
	})

	t.Run("Explicit Zero Price Stands", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/trips", gin.H{
			"route_id":       route.ID,
			"bus_id":         bus.ID,
			"departure_time": dep.Format(time.RFC3339),
			"arrival_time":   dep.Add(7 * time.Hour).Format(time.RFC3339),
			"price":          0,
		}, cookie)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var trip models.Trip
		decode(t, w, &trip)
		assert.Equal(t, 0.0, trip.Price)
	})

	t.Run("Seats Capped By Capacity", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/trips", gin.H{
			"route_id":        route.ID,
			"bus_id":          bus.ID,
			"departure_time":  dep.Format(time.RFC3339),
			"arrival_time":    dep.Add(7 * time.Hour).Format(time.RFC3339),
			"available_seats": 100,
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Arrival Before Departure", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/trips", gin.H{
			"route_id":       route.ID,
			"bus_id":         bus.ID,
			"departure_time": dep.Format(time.RFC3339),
			"arrival_time":   dep.Add(-time.Hour).Format(time.RFC3339),
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Foreign Route Rejected", func(t *testing.T) {
		_, other := env.registerAndLogin(t, "othertrip")
		otherBus := env.seedBus(t, other, 30)

		w := env.do(t, http.MethodPost, "/api/trips", gin.H{
			"route_id":       route.ID,
			"bus_id":         otherBus.ID,
			"departure_time": dep.Format(time.RFC3339),
			"arrival_time":   dep.Add(7 * time.Hour).Format(time.RFC3339),
		}, other)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpcomingTripsHandler(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.registerAndLogin(t, "upcoming")
	route := env.seedRoute(t, cookie)
	bus := env.seedBus(t, cookie, 44)

	mk := func(offset time.Duration) {
		dep := time.Now().UTC().Add(offset)
		w := env.do(t, http.MethodPost, "/api/trips", gin.H{
			"route_id":       route.ID,
			"bus_id":         bus.ID,
			"departure_time": dep.Format(time.RFC3339),
			"arrival_time":   dep.Add(5 * time.Hour).Format(time.RFC3339),
		}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	mk(72 * time.Hour)
	mk(24 * time.Hour)
	mk(48 * time.Hour)

	t.Run("Sorted Soonest First", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/trips/upcoming", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var trips []models.Trip
		decode(t, w, &trips)
		require.Len(t, trips, 3)
		assert.True(t, trips[0].DepartureTime.Before(trips[1].DepartureTime))
		assert.True(t, trips[1].DepartureTime.Before(trips[2].DepartureTime))
	})

	t.Run("Limit Respected", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/trips/upcoming?limit=2", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var trips []models.Trip
		decode(t, w, &trips)
		assert.Len(t, trips, 2)
	})

	t.Run("Bad Limit Falls Back To Default", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/trips/upcoming?limit=oops", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var trips []models.Trip
		decode(t, w, &trips)
		assert.Len(t, trips, 3)
	})
}

func TestUpdateTripHandler(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.registerAndLogin(t, "tripupd")
	route := env.seedRoute(t, cookie)
	bus := env.seedBus(t, cookie, 44)
	trip := env.seedTrip(t, cookie, route.ID, bus.ID)

	t.Run("Cancel", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/trips/%d", trip.ID), gin.H{
			"status": "cancelled",
		}, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Trip
		decode(t, w, &got)
		assert.Equal(t, models.TripStatusCancelled, got.Status)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/trips/%d", trip.ID), gin.H{
			"status": "boarding",
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Arrival Moved Before Current Departure", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/trips/%d", trip.ID), gin.H{
			"arrival_time": trip.DepartureTime.Add(-time.Hour).Format(time.RFC3339),
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/trips/%d", trip.ID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, fmt.Sprintf("/api/trips/%d", trip.ID), nil, cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteReferencedResources(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.registerAndLogin(t, "tripdel")
	route := env.seedRoute(t, cookie)
	bus := env.seedBus(t, cookie, 20)
	trip := env.seedTrip(t, cookie, route.ID, bus.ID)

	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"trip_id":        trip.ID,
		"customer_name":  "Nchimunya",
		"customer_email": "nchimunya@example.com",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("Trip With Bookings", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/trips/%d", trip.ID), nil, cookie)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Route With Trips", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/routes/%d", route.ID), nil, cookie)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Bus With Trips", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/buses/%d", bus.ID), nil, cookie)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

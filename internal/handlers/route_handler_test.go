package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

func TestRouteCRUD(t *testing.T) {
	env := newTestEnv(t)
	vendor, cookie := env.registerAndLogin(t, "routesco")

	route := env.seedRoute(t, cookie)
	assert.Equal(t, vendor.ID, route.VendorID)
	assert.True(t, route.IsActive)
	assert.False(t, route.HasStops)

	t.Run("List", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/routes", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var routes []models.Route
		decode(t, w, &routes)
		require.Len(t, routes, 1)
		assert.Equal(t, route.ID, routes[0].ID)
	})

	t.Run("Get", func(t *testing.T) {
		w := env.do(t, http.MethodGet, fmt.Sprintf("/api/routes/%d", route.ID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Update", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/routes/%d", route.ID), gin.H{
			"price": 400,
		}, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Route
		decode(t, w, &got)
		assert.Equal(t, 400.0, got.Price)
		assert.Equal(t, "Lusaka", got.Origin)
	})

	t.Run("Negative Price Rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/routes/%d", route.ID), gin.H{
			"price": -5,
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/routes/%d", route.ID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, fmt.Sprintf("/api/routes/%d", route.ID), nil, cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouteOwnership(t *testing.T) {
	env := newTestEnv(t)
	_, owner := env.registerAndLogin(t, "owner")
	_, intruder := env.registerAndLogin(t, "intruder")

	route := env.seedRoute(t, owner)

	// Another vendor's route is indistinguishable from a missing one
	for _, tc := range []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, fmt.Sprintf("/api/routes/%d", route.ID), nil},
		{http.MethodPatch, fmt.Sprintf("/api/routes/%d", route.ID), gin.H{"price": 1}},
		{http.MethodDelete, fmt.Sprintf("/api/routes/%d", route.ID), nil},
		{http.MethodGet, fmt.Sprintf("/api/routes/%d/stops", route.ID), nil},
	} {
		w := env.do(t, tc.method, tc.path, tc.body, intruder)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}

	// Not listed either
	w := env.do(t, http.MethodGet, "/api/routes", nil, intruder)
	require.Equal(t, http.StatusOK, w.Code)
	var routes []models.Route
	decode(t, w, &routes)
	assert.Empty(t, routes)
}

func TestRouteStops(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.registerAndLogin(t, "stopsco")
	route := env.seedRoute(t, cookie)

	addStop := func(name string, distance float64, order int) *http.Response {
		w := env.do(t, http.MethodPost, fmt.Sprintf("/api/routes/%d/stops", route.ID), gin.H{
			"name":        name,
			"distance_km": distance,
			"stop_order":  order,
		}, cookie)
		return w.Result()
	}

	t.Run("Add Stops In Order", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, addStop("Kafue", 44, 1).StatusCode)
		require.Equal(t, http.StatusCreated, addStop("Mazabuka", 125, 2).StatusCode)

		w := env.do(t, http.MethodGet, fmt.Sprintf("/api/routes/%d/stops", route.ID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var stops []models.RouteStop
		decode(t, w, &stops)
		require.Len(t, stops, 2)
		assert.Equal(t, "Kafue", stops[0].Name)
		assert.Equal(t, "Mazabuka", stops[1].Name)
	})

	t.Run("Route Marked Having Stops", func(t *testing.T) {
		w := env.do(t, http.MethodGet, fmt.Sprintf("/api/routes/%d", route.ID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Route
		decode(t, w, &got)
		assert.True(t, got.HasStops)
	})

	t.Run("Duplicate Order Rejected", func(t *testing.T) {
		resp := addStop("Monze", 200, 2)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Distance Must Increase With Order", func(t *testing.T) {
		resp := addStop("Choma", 80, 3)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Zero Order Rejected", func(t *testing.T) {
		resp := addStop("Depot", 0, 0)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestBusCRUD(t *testing.T) {
	env := newTestEnv(t)
	vendor, cookie := env.registerAndLogin(t, "busco")

	bus := env.seedBus(t, cookie, 44)
	assert.Equal(t, vendor.ID, bus.VendorID)

	t.Run("Update Capacity", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/buses/%d", bus.ID), gin.H{
			"capacity": 52,
		}, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Bus
		decode(t, w, &got)
		assert.Equal(t, 52, got.Capacity)
	})

	t.Run("Zero Capacity Rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/buses", gin.H{
			"name":                "Broken",
			"registration_number": "XYZ 1",
			"capacity":            0,
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/buses/%d", bus.ID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, fmt.Sprintf("/api/buses/%d", bus.ID), nil, cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

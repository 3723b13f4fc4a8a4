package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// RouteHandler handles routes and their ordered stops
type RouteHandler struct {
	routes store.RouteStore
}

// NewRouteHandler creates a new RouteHandler
func NewRouteHandler(routes store.RouteStore) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// getOwnedRoute loads a route and verifies it belongs to the vendor.
// A route owned by someone else looks exactly like a missing one.
func (h *RouteHandler) getOwnedRoute(c *gin.Context, id, vendorID int64) (*models.Route, bool) {
	route, err := h.routes.GetRouteByID(id)
	if err != nil {
		storeError(c, err, "Route")
		return nil, false
	}
	if route.VendorID != vendorID {
		notFound(c, "Route")
		return nil, false
	}
	return route, true
}

// ListRoutes returns all routes owned by the vendor
// GET /api/routes
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	routes, err := h.routes.ListRoutesByVendor(vc.VendorID)
	if err != nil {
		storeError(c, err, "Route")
		return
	}

	c.JSON(http.StatusOK, routes)
}

// GetRoute returns one route
// GET /api/routes/:id
func (h *RouteHandler) GetRoute(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	route, ok := h.getOwnedRoute(c, id, vc.VendorID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, route)
}

// CreateRoute creates a new route owned by the vendor
// POST /api/routes
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route := &models.Route{
		VendorID:        vc.VendorID,
		Origin:          req.Origin,
		Destination:     req.Destination,
		DistanceKM:      req.DistanceKM,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	}
	if req.IsActive != nil {
		route.IsActive = *req.IsActive
	}

	if err := h.routes.CreateRoute(route); err != nil {
		storeError(c, err, "Route")
		return
	}

	c.JSON(http.StatusCreated, route)
}

// UpdateRoute applies a partial update to a route
// PATCH /api/routes/:id
func (h *RouteHandler) UpdateRoute(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.getOwnedRoute(c, id, vc.VendorID); !ok {
		return
	}

	route, err := h.routes.UpdateRoute(id, &req)
	if err != nil {
		storeError(c, err, "Route")
		return
	}

	c.JSON(http.StatusOK, route)
}

// DeleteRoute removes a route and its stops
// DELETE /api/routes/:id
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, ok := h.getOwnedRoute(c, id, vc.VendorID); !ok {
		return
	}

	if err := h.routes.DeleteRoute(id); err != nil {
		storeError(c, err, "Route")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route deleted"})
}

// ListStops returns a route's stops in boarding order
// GET /api/routes/:id/stops
func (h *RouteHandler) ListStops(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, ok := h.getOwnedRoute(c, id, vc.VendorID); !ok {
		return
	}

	stops, err := h.routes.ListStopsByRoute(id)
	if err != nil {
		storeError(c, err, "Route")
		return
	}

	c.JSON(http.StatusOK, stops)
}

// CreateStop adds a stop to a route. Stop order must be unique within
// the route and distances must increase with stop order.
// POST /api/routes/:id/stops
func (h *RouteHandler) CreateStop(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.CreateRouteStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.getOwnedRoute(c, id, vc.VendorID); !ok {
		return
	}

	stop := &models.RouteStop{
		RouteID:    id,
		Name:       req.Name,
		DistanceKM: req.DistanceKM,
		StopOrder:  req.StopOrder,
	}
	if err := h.routes.CreateRouteStop(stop); err != nil {
		storeError(c, err, "Stop")
		return
	}

	c.JSON(http.StatusCreated, stop)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zamtransit/vendor-portal-backend/internal/middleware"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// requireVendor extracts the authenticated vendor from the context.
// Responds 401 and returns false when the middleware did not run.
func requireVendor(c *gin.Context) (middleware.VendorContext, bool) {
	vc, ok := middleware.GetVendor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return middleware.VendorContext{}, false
	}
	return vc, true
}

// pathID parses the :id path parameter. Responds 400 and returns false
// on a malformed value.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// queryLimit parses the limit query parameter with a default and cap
func queryLimit(c *gin.Context, def, max int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// notFound responds 404. Resources owned by another vendor get the same
// response as resources that do not exist.
func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}

// storeError maps a store error to an HTTP response
func storeError(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(c, what)
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": what + " already exists"})
	case errors.Is(err, store.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"error": what + " is still referenced by other records"})
	case errors.Is(err, store.ErrInsufficientSeats):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough available seats"})
	case errors.Is(err, store.ErrStopSequence):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stop order conflicts with existing stops"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

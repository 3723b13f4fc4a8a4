package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// DashboardHandler serves the vendor dashboard aggregates
type DashboardHandler struct {
	stats store.StatsStore
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(stats store.StatsStore) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// GetStats returns the vendor's dashboard numbers
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	stats, err := h.stats.DashboardStats(vc.VendorID, time.Now().UTC())
	if err != nil {
		storeError(c, err, "Stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

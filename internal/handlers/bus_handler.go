package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// BusHandler handles the vendor's vehicle fleet
type BusHandler struct {
	buses store.BusStore
}

// NewBusHandler creates a new BusHandler
func NewBusHandler(buses store.BusStore) *BusHandler {
	return &BusHandler{buses: buses}
}

func (h *BusHandler) getOwnedBus(c *gin.Context, id, vendorID int64) (*models.Bus, bool) {
	bus, err := h.buses.GetBusByID(id)
	if err != nil {
		storeError(c, err, "Bus")
		return nil, false
	}
	if bus.VendorID != vendorID {
		notFound(c, "Bus")
		return nil, false
	}
	return bus, true
}

// ListBuses returns all buses owned by the vendor
// GET /api/buses
func (h *BusHandler) ListBuses(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	buses, err := h.buses.ListBusesByVendor(vc.VendorID)
	if err != nil {
		storeError(c, err, "Bus")
		return
	}

	c.JSON(http.StatusOK, buses)
}

// GetBus returns one bus
// GET /api/buses/:id
func (h *BusHandler) GetBus(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	bus, ok := h.getOwnedBus(c, id, vc.VendorID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, bus)
}

// CreateBus registers a new bus
// POST /api/buses
func (h *BusHandler) CreateBus(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	var req models.CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bus := &models.Bus{
		VendorID:           vc.VendorID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Capacity:           req.Capacity,
		BusType:            req.BusType,
		IsActive:           true,
	}
	if req.IsActive != nil {
		bus.IsActive = *req.IsActive
	}

	if err := h.buses.CreateBus(bus); err != nil {
		storeError(c, err, "Bus")
		return
	}

	c.JSON(http.StatusCreated, bus)
}

// UpdateBus applies a partial update to a bus
// PATCH /api/buses/:id
func (h *BusHandler) UpdateBus(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.getOwnedBus(c, id, vc.VendorID); !ok {
		return
	}

	bus, err := h.buses.UpdateBus(id, &req)
	if err != nil {
		storeError(c, err, "Bus")
		return
	}

	c.JSON(http.StatusOK, bus)
}

// DeleteBus removes a bus
// DELETE /api/buses/:id
func (h *BusHandler) DeleteBus(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, ok := h.getOwnedBus(c, id, vc.VendorID); !ok {
		return
	}

	if err := h.buses.DeleteBus(id); err != nil {
		storeError(c, err, "Bus")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bus deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// ProfileHandler handles the vendor's own profile
type ProfileHandler struct {
	vendors store.VendorStore
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(vendors store.VendorStore) *ProfileHandler {
	return &ProfileHandler{vendors: vendors}
}

// GetProfile returns the authenticated vendor's profile
// GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	vendor, err := h.vendors.GetVendorByID(vc.VendorID)
	if err != nil {
		storeError(c, err, "Vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// UpdateProfile applies a partial update to the vendor's profile.
// Username and password cannot be changed here; an empty patch is a
// no-op that returns the current profile.
// PATCH /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	var req models.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendors.UpdateVendor(vc.VendorID, &req)
	if err != nil {
		storeError(c, err, "Vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

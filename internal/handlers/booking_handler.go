package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/services"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
	"github.com/zamtransit/vendor-portal-backend/pkg/validator"
)

// BookingHandler handles reservations recorded by the vendor
type BookingHandler struct {
	bookings  store.BookingStore
	trips     store.TripStore
	customers store.CustomerStore
	receipts  *services.ReceiptService
	contacts  *validator.ContactValidator
	logger    *logrus.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookings store.BookingStore, trips store.TripStore, customers store.CustomerStore, receipts *services.ReceiptService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		bookings:  bookings,
		trips:     trips,
		customers: customers,
		receipts:  receipts,
		contacts:  validator.NewContactValidator(),
		logger:    logger,
	}
}

func (h *BookingHandler) getOwnedBooking(c *gin.Context, id, vendorID int64) (*models.Booking, bool) {
	booking, err := h.bookings.GetBookingByID(id)
	if err != nil {
		storeError(c, err, "Booking")
		return nil, false
	}
	if booking.VendorID != vendorID {
		notFound(c, "Booking")
		return nil, false
	}
	return booking, true
}

// ListBookings returns all bookings attributed to the vendor
// GET /api/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	bookings, err := h.bookings.ListBookingsByVendor(vc.VendorID)
	if err != nil {
		storeError(c, err, "Booking")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// RecentBookings returns the vendor's most recent bookings
// GET /api/bookings/recent?limit=N
func (h *BookingHandler) RecentBookings(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	limit := queryLimit(c, 5, 50)
	bookings, err := h.bookings.RecentBookings(vc.VendorID, limit)
	if err != nil {
		storeError(c, err, "Booking")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one booking
// GET /api/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, ok := h.getOwnedBooking(c, id, vc.VendorID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CreateBooking records a booking on one of the vendor's trips. The
// customer is looked up by email and created when absent; seats are
// taken from the trip atomically.
// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, err := h.contacts.ValidateEmail(req.CustomerEmail)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CustomerPhone != nil {
		phone, err := h.contacts.ValidatePhone(*req.CustomerPhone)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.CustomerPhone = &phone
	}

	trip, err := h.trips.GetTripByID(req.TripID)
	if err != nil {
		storeError(c, err, "Trip")
		return
	}
	if trip.VendorID != vc.VendorID {
		notFound(c, "Trip")
		return
	}

	customer, err := h.customers.GetCustomerByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		customer = &models.Customer{
			Name:  req.CustomerName,
			Email: email,
			Phone: req.CustomerPhone,
		}
		err = h.customers.CreateCustomer(customer)
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to resolve customer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	seatCount := req.SeatCount
	if seatCount == 0 {
		seatCount = 1
	}
	totalPrice := trip.Price * float64(seatCount)
	if req.TotalPrice != nil {
		totalPrice = *req.TotalPrice
	}

	booking := &models.Booking{
		TripID:     req.TripID,
		CustomerID: customer.ID,
		SeatCount:  seatCount,
		Status:     models.BookingStatusPending,
		TotalPrice: totalPrice,
	}
	if req.BookingTime != nil {
		booking.BookingTime = *req.BookingTime
	}

	if err := h.bookings.CreateBooking(booking); err != nil {
		storeError(c, err, "Booking")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"trip_id":    booking.TripID,
		"seats":      booking.SeatCount,
	}).Info("Booking created")

	c.JSON(http.StatusCreated, booking)
}

// UpdateStatus transitions a booking's status. Cancelling returns the
// seats to the trip; reinstating takes them back.
// PATCH /api/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.getOwnedBooking(c, id, vc.VendorID); !ok {
		return
	}

	booking, err := h.bookings.UpdateBookingStatus(id, req.Status)
	if err != nil {
		storeError(c, err, "Booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// Receipt renders the booking's PDF receipt
// GET /api/bookings/:id/receipt
func (h *BookingHandler) Receipt(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, ok := h.getOwnedBooking(c, id, vc.VendorID)
	if !ok {
		return
	}

	pdf, err := h.receipts.BookingReceipt(booking)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render receipt")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%d.pdf"`, booking.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

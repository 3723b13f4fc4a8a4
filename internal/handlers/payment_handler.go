package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// PaymentHandler handles payments recorded against bookings
type PaymentHandler struct {
	payments store.PaymentStore
	bookings store.BookingStore
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments store.PaymentStore, bookings store.BookingStore) *PaymentHandler {
	return &PaymentHandler{payments: payments, bookings: bookings}
}

func (h *PaymentHandler) getOwnedPayment(c *gin.Context, id, vendorID int64) (*models.Payment, bool) {
	payment, err := h.payments.GetPaymentByID(id)
	if err != nil {
		storeError(c, err, "Payment")
		return nil, false
	}
	if payment.VendorID != vendorID {
		notFound(c, "Payment")
		return nil, false
	}
	return payment, true
}

// ListPayments returns all payments attributed to the vendor
// GET /api/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	payments, err := h.payments.ListPaymentsByVendor(vc.VendorID)
	if err != nil {
		storeError(c, err, "Payment")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPayment returns one payment
// GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	payment, ok := h.getOwnedPayment(c, id, vc.VendorID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, payment)
}

// CreatePayment records a payment against one of the vendor's bookings.
// The owning vendor comes from the booking, never from the request.
// POST /api/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookings.GetBookingByID(req.BookingID)
	if err != nil {
		storeError(c, err, "Booking")
		return
	}
	if booking.VendorID != vc.VendorID {
		notFound(c, "Booking")
		return
	}

	payment := &models.Payment{
		BookingID:      req.BookingID,
		Amount:         req.Amount,
		Method:         req.Method,
		Status:         models.PaymentStatusPending,
		TransactionRef: req.TransactionRef,
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}
	if req.PaymentTime != nil {
		payment.PaymentTime = *req.PaymentTime
	}

	if err := h.payments.CreatePayment(payment); err != nil {
		storeError(c, err, "Payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// UpdateStatus transitions a payment's status
// PATCH /api/payments/:id/status
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.getOwnedPayment(c, id, vc.VendorID); !ok {
		return
	}

	payment, err := h.payments.UpdatePaymentStatus(id, req.Status)
	if err != nil {
		storeError(c, err, "Payment")
		return
	}

	c.JSON(http.StatusOK, payment)
}

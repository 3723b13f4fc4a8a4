package models

import (
	"errors"
	"time"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
)

// PaymentStatus represents the lifecycle status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// ValidPaymentMethod reports whether m is a known payment method
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobileMoney:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment represents a monetary transaction settling a booking. The
// vendor reference is denormalized from the booking at creation.
type Payment struct {
	ID             int64         `json:"id" db:"id"`
	BookingID      int64         `json:"booking_id" db:"booking_id"`
	VendorID       int64         `json:"vendor_id" db:"vendor_id"`
	Amount         float64       `json:"amount" db:"amount"`
	Method         PaymentMethod `json:"method" db:"method"`
	Status         PaymentStatus `json:"status" db:"status"`
	TransactionRef *string       `json:"transaction_ref,omitempty" db:"transaction_ref"`
	PaymentTime    time.Time     `json:"payment_time" db:"payment_time"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	BookingID      int64          `json:"booking_id" binding:"required"`
	Amount         float64        `json:"amount" binding:"required"`
	Method         PaymentMethod  `json:"method" binding:"required"`
	Status         *PaymentStatus `json:"status,omitempty"`
	TransactionRef *string        `json:"transaction_ref,omitempty"`
	PaymentTime    *time.Time     `json:"payment_time,omitempty"`
}

// UpdatePaymentStatusRequest represents a payment status transition
type UpdatePaymentStatusRequest struct {
	Status PaymentStatus `json:"status" binding:"required"`
}

// Validate validates the CreatePaymentRequest
func (r *CreatePaymentRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if !ValidPaymentMethod(r.Method) {
		return errors.New("invalid method: must be cash, card, or mobile_money")
	}
	if r.Status != nil && !ValidPaymentStatus(*r.Status) {
		return errors.New("invalid status: must be pending, completed, failed, or refunded")
	}
	return nil
}

// Validate validates the UpdatePaymentStatusRequest
func (r *UpdatePaymentStatusRequest) Validate() error {
	if !ValidPaymentStatus(r.Status) {
		return errors.New("invalid status: must be pending, completed, failed, or refunded")
	}
	return nil
}

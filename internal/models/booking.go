package models

import (
	"errors"
	"strings"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is a known booking status
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking represents a customer's reservation on a trip. The vendor
// reference is denormalized from the trip at creation for query
// convenience and is never re-derived afterwards.
type Booking struct {
	ID          int64         `json:"id" db:"id"`
	TripID      int64         `json:"trip_id" db:"trip_id"`
	CustomerID  int64         `json:"customer_id" db:"customer_id"`
	VendorID    int64         `json:"vendor_id" db:"vendor_id"`
	SeatCount   int           `json:"seat_count" db:"seat_count"`
	Status      BookingStatus `json:"status" db:"status"`
	TotalPrice  float64       `json:"total_price" db:"total_price"`
	BookingTime time.Time     `json:"booking_time" db:"booking_time"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest represents the request to record a booking.
// The customer is looked up by email (first match) and created when absent.
type CreateBookingRequest struct {
	TripID        int64      `json:"trip_id" binding:"required"`
	CustomerName  string     `json:"customer_name" binding:"required"`
	CustomerEmail string     `json:"customer_email" binding:"required,email"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	SeatCount     int        `json:"seat_count"`
	TotalPrice    *float64   `json:"total_price,omitempty"`
	BookingTime   *time.Time `json:"booking_time,omitempty"`
}

// UpdateBookingStatusRequest represents a booking status transition
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}

// Validate validates the CreateBookingRequest
func (r *CreateBookingRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return errors.New("customer_name is required")
	}
	if strings.TrimSpace(r.CustomerEmail) == "" {
		return errors.New("customer_email is required")
	}
	if r.SeatCount < 0 {
		return errors.New("seat_count must not be negative")
	}
	if r.TotalPrice != nil && *r.TotalPrice < 0 {
		return errors.New("total_price must not be negative")
	}
	return nil
}

// Validate validates the UpdateBookingStatusRequest
func (r *UpdateBookingStatusRequest) Validate() error {
	if !ValidBookingStatus(r.Status) {
		return errors.New("invalid status: must be pending, confirmed, cancelled, or completed")
	}
	return nil
}

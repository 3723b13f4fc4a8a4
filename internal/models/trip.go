package models

import (
	"errors"
	"time"
)

// TripStatus represents the lifecycle status of a trip
type TripStatus string

const (
	TripStatusScheduled  TripStatus = "scheduled"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// ValidTripStatus reports whether s is a known trip status
func ValidTripStatus(s TripStatus) bool {
	switch s {
	case TripStatusScheduled, TripStatusInProgress, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// Trip represents a scheduled journey using one route and one bus
type Trip struct {
	ID             int64      `json:"id" db:"id"`
	VendorID       int64      `json:"vendor_id" db:"vendor_id"`
	RouteID        int64      `json:"route_id" db:"route_id"`
	BusID          int64      `json:"bus_id" db:"bus_id"`
	DepartureTime  time.Time  `json:"departure_time" db:"departure_time"`
	ArrivalTime    time.Time  `json:"arrival_time" db:"arrival_time"`
	Status         TripStatus `json:"status" db:"status"`
	AvailableSeats int        `json:"available_seats" db:"available_seats"`
	Price          float64    `json:"price" db:"price"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateTripRequest represents the request to schedule a trip
type CreateTripRequest struct {
	RouteID        int64     `json:"route_id" binding:"required"`
	BusID          int64     `json:"bus_id" binding:"required"`
	DepartureTime  time.Time `json:"departure_time" binding:"required"`
	ArrivalTime    time.Time `json:"arrival_time" binding:"required"`
	AvailableSeats *int      `json:"available_seats,omitempty"`
	Price          *float64  `json:"price,omitempty"`
}

// UpdateTripRequest represents a partial update to a trip
type UpdateTripRequest struct {
	DepartureTime  *time.Time  `json:"departure_time,omitempty"`
	ArrivalTime    *time.Time  `json:"arrival_time,omitempty"`
	Status         *TripStatus `json:"status,omitempty"`
	AvailableSeats *int        `json:"available_seats,omitempty"`
	Price          *float64    `json:"price,omitempty"`
}

// Validate validates the CreateTripRequest
func (r *CreateTripRequest) Validate() error {
	if !r.ArrivalTime.After(r.DepartureTime) {
		return errors.New("arrival_time must be after departure_time")
	}
	if r.AvailableSeats != nil && *r.AvailableSeats < 0 {
		return errors.New("available_seats must not be negative")
	}
	if r.Price != nil && *r.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

// Validate validates the UpdateTripRequest
func (r *UpdateTripRequest) Validate() error {
	if r.DepartureTime != nil && r.ArrivalTime != nil && !r.ArrivalTime.After(*r.DepartureTime) {
		return errors.New("arrival_time must be after departure_time")
	}
	if r.Status != nil && !ValidTripStatus(*r.Status) {
		return errors.New("invalid status: must be scheduled, in_progress, completed, or cancelled")
	}
	if r.AvailableSeats != nil && *r.AvailableSeats < 0 {
		return errors.New("available_seats must not be negative")
	}
	if r.Price != nil && *r.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

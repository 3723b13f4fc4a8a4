package models

import (
	"errors"
	"strings"
	"time"
)

// Bus represents a vehicle owned by a vendor
type Bus struct {
	ID                 int64     `json:"id" db:"id"`
	VendorID           int64     `json:"vendor_id" db:"vendor_id"`
	Name               string    `json:"name" db:"name"`
	RegistrationNumber string    `json:"registration_number" db:"registration_number"`
	Capacity           int       `json:"capacity" db:"capacity"`
	BusType            *string   `json:"bus_type,omitempty" db:"bus_type"`
	IsActive           bool      `json:"is_active" db:"is_active"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// CreateBusRequest represents the request to register a bus
type CreateBusRequest struct {
	Name               string  `json:"name" binding:"required"`
	RegistrationNumber string  `json:"registration_number" binding:"required"`
	Capacity           int     `json:"capacity" binding:"required,gt=0"`
	BusType            *string `json:"bus_type,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
}

// UpdateBusRequest represents a partial update to a bus
type UpdateBusRequest struct {
	Name               *string `json:"name,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	Capacity           *int    `json:"capacity,omitempty"`
	BusType            *string `json:"bus_type,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
}

// Validate validates the CreateBusRequest
func (r *CreateBusRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.RegistrationNumber) == "" {
		return errors.New("registration_number is required")
	}
	if r.Capacity <= 0 {
		return errors.New("capacity must be greater than 0")
	}
	return nil
}

// Validate validates the UpdateBusRequest
func (r *UpdateBusRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name must not be empty")
	}
	if r.RegistrationNumber != nil && strings.TrimSpace(*r.RegistrationNumber) == "" {
		return errors.New("registration_number must not be empty")
	}
	if r.Capacity != nil && *r.Capacity <= 0 {
		return errors.New("capacity must be greater than 0")
	}
	return nil
}

package models

import (
	"errors"
	"strings"
	"time"
)

// Route represents a fixed origin to destination path owned by one vendor
type Route struct {
	ID              int64     `json:"id" db:"id"`
	VendorID        int64     `json:"vendor_id" db:"vendor_id"`
	Origin          string    `json:"origin" db:"origin"`
	Destination     string    `json:"destination" db:"destination"`
	DistanceKM      *float64  `json:"distance_km,omitempty" db:"distance_km"`
	DurationMinutes *int      `json:"duration_minutes,omitempty" db:"duration_minutes"`
	Price           float64   `json:"price" db:"price"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	HasStops        bool      `json:"has_stops" db:"has_stops"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// RouteStop represents an ordered waypoint on a route
type RouteStop struct {
	ID         int64     `json:"id" db:"id"`
	RouteID    int64     `json:"route_id" db:"route_id"`
	Name       string    `json:"name" db:"name"`
	DistanceKM float64   `json:"distance_km" db:"distance_km"`
	StopOrder  int       `json:"stop_order" db:"stop_order"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateRouteRequest represents the request to create a route
type CreateRouteRequest struct {
	Origin          string   `json:"origin" binding:"required"`
	Destination     string   `json:"destination" binding:"required"`
	DistanceKM      *float64 `json:"distance_km,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Price           float64  `json:"price"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// UpdateRouteRequest represents a partial update to a route.
// The owning vendor is fixed for the lifetime of the route.
type UpdateRouteRequest struct {
	Origin          *string  `json:"origin,omitempty"`
	Destination     *string  `json:"destination,omitempty"`
	DistanceKM      *float64 `json:"distance_km,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// CreateRouteStopRequest represents the request to add a stop to a route
type CreateRouteStopRequest struct {
	Name       string  `json:"name" binding:"required"`
	DistanceKM float64 `json:"distance_km"`
	StopOrder  int     `json:"stop_order"`
}

// Validate validates the CreateRouteRequest
func (r *CreateRouteRequest) Validate() error {
	if strings.TrimSpace(r.Origin) == "" {
		return errors.New("origin is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		return errors.New("destination is required")
	}
	if r.Price < 0 {
		return errors.New("price must not be negative")
	}
	if r.DistanceKM != nil && *r.DistanceKM < 0 {
		return errors.New("distance_km must not be negative")
	}
	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		return errors.New("duration_minutes must be greater than 0")
	}
	return nil
}

// Validate validates the UpdateRouteRequest
func (r *UpdateRouteRequest) Validate() error {
	if r.Origin != nil && strings.TrimSpace(*r.Origin) == "" {
		return errors.New("origin must not be empty")
	}
	if r.Destination != nil && strings.TrimSpace(*r.Destination) == "" {
		return errors.New("destination must not be empty")
	}
	if r.Price != nil && *r.Price < 0 {
		return errors.New("price must not be negative")
	}
	if r.DistanceKM != nil && *r.DistanceKM < 0 {
		return errors.New("distance_km must not be negative")
	}
	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		return errors.New("duration_minutes must be greater than 0")
	}
	return nil
}

// Validate validates the CreateRouteStopRequest
func (r *CreateRouteStopRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.DistanceKM < 0 {
		return errors.New("distance_km must not be negative")
	}
	if r.StopOrder < 1 {
		return errors.New("stop_order must be at least 1")
	}
	return nil
}

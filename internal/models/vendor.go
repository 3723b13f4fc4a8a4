package models

import (
	"errors"
	"strings"
	"time"
)

// Vendor represents a transport operator account on the platform.
// The password hash is never serialized in API responses.
type Vendor struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	Company      *string   `json:"company,omitempty" db:"company"`
	Address      *string   `json:"address,omitempty" db:"address"`
	City         *string   `json:"city,omitempty" db:"city"`
	AvatarURL    *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest represents the request to create a vendor account
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
}

// LoginRequest represents the request to authenticate a vendor
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateVendorRequest represents a partial update to a vendor profile.
// Username, password, id and created_at are not updatable through this path.
type UpdateVendorRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Company   *string `json:"company,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Validate validates the RegisterRequest
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(strings.ToLower(r.Username))
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))

	if len(r.Username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if strings.ContainsAny(r.Username, " \t") {
		return errors.New("username must not contain whitespace")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// Validate validates the UpdateVendorRequest
func (r *UpdateVendorRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name must not be empty")
	}
	if r.Email != nil {
		trimmed := strings.TrimSpace(strings.ToLower(*r.Email))
		if trimmed == "" {
			return errors.New("email must not be empty")
		}
		r.Email = &trimmed
	}
	return nil
}

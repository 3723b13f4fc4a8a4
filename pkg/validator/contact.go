package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyEmail indicates the email address is empty
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail indicates the email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmptyPhone indicates the phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidPhone indicates the phone number is not a Zambian mobile number
	ErrInvalidPhone = errors.New("phone number must be a Zambian mobile number (09X or 07X)")
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var phoneRegex = regexp.MustCompile(`^\d+$`)

// validPrefixes contains the Zambian mobile operator prefixes
var validPrefixes = []string{
	"095", // Zamtel
	"096", // MTN
	"097", // Airtel
	"076", // MTN
	"077", // Airtel
}

// ContactValidator validates customer and vendor contact details
type ContactValidator struct{}

// NewContactValidator creates a new contact validator instance
func NewContactValidator() *ContactValidator {
	return &ContactValidator{}
}

// ValidateEmail validates an email address and returns it lowercased
func (v *ContactValidator) ValidateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(email), nil
}

// ValidatePhone validates a Zambian mobile number.
// Accepts 0961234567, 096 123 4567, or +260961234567 and returns the
// local ten-digit form.
func (v *ContactValidator) ValidatePhone(phone string) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}

	sanitized := v.Sanitize(phone)

	if !phoneRegex.MatchString(sanitized) {
		return "", ErrInvalidPhone
	}
	if len(sanitized) != 10 {
		return "", ErrInvalidPhone
	}
	if !v.hasValidPrefix(sanitized) {
		return "", ErrInvalidPhone
	}

	return sanitized, nil
}

// Sanitize strips separators and normalizes the +260 country code to the
// local leading zero
func (v *ContactValidator) Sanitize(phone string) string {
	for _, sep := range []string{" ", "-", "(", ")", "+", "."} {
		phone = strings.ReplaceAll(phone, sep, "")
	}

	if strings.HasPrefix(phone, "260") && len(phone) == 12 {
		phone = "0" + phone[3:]
	}

	return phone
}

func (v *ContactValidator) hasValidPrefix(phone string) bool {
	if len(phone) < 3 {
		return false
	}

	prefix := phone[:3]
	for _, valid := range validPrefixes {
		if prefix == valid {
			return true
		}
	}

	return false
}

// IsValidEmail is a convenience method that returns true if email is valid
func (v *ContactValidator) IsValidEmail(email string) bool {
	_, err := v.ValidateEmail(email)
	return err == nil
}

// IsValidPhone is a convenience method that returns true if phone is valid
func (v *ContactValidator) IsValidPhone(phone string) bool {
	_, err := v.ValidatePhone(phone)
	return err == nil
}

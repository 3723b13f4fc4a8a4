package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	v := NewContactValidator()

	t.Run("Valid Email Lowercased", func(t *testing.T) {
		email, err := v.ValidateEmail("  Bwalya@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "bwalya@example.com", email)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := v.ValidateEmail("")
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, bad := range []string{"no-at-sign", "two@@example.com", "spaces in@example.com", "missing@tld"} {
			_, err := v.ValidateEmail(bad)
			assert.ErrorIs(t, err, ErrInvalidEmail, bad)
		}
	})
}

func TestValidatePhone(t *testing.T) {
	v := NewContactValidator()

	t.Run("Local Format", func(t *testing.T) {
		phone, err := v.ValidatePhone("0961234567")
		require.NoError(t, err)
		assert.Equal(t, "0961234567", phone)
	})

	t.Run("With Separators", func(t *testing.T) {
		phone, err := v.ValidatePhone("096 123-4567")
		require.NoError(t, err)
		assert.Equal(t, "0961234567", phone)
	})

	t.Run("Country Code", func(t *testing.T) {
		phone, err := v.ValidatePhone("+260971234567")
		require.NoError(t, err)
		assert.Equal(t, "0971234567", phone)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, bad := range []string{"12345", "0881234567", "09612345678", "096abc4567"} {
			_, err := v.ValidatePhone(bad)
			assert.ErrorIs(t, err, ErrInvalidPhone, bad)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := v.ValidatePhone("")
		assert.ErrorIs(t, err, ErrEmptyPhone)
	})
}

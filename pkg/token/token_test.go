package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	t.Run("Round Trip", func(t *testing.T) {
		signed, err := svc.Generate(42, "mazhandu")
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		claims, err := svc.Validate(signed)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.VendorID)
		assert.Equal(t, "mazhandu", claims.Username)
		assert.Equal(t, "42", claims.Subject)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		signed, err := svc.Generate(42, "mazhandu")
		require.NoError(t, err)

		other := NewService("different-secret", time.Hour)
		claims, err := other.Validate(signed)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Expired Token", func(t *testing.T) {
		shortLived := NewService("test-secret", -time.Minute)
		signed, err := shortLived.Generate(42, "mazhandu")
		require.NoError(t, err)

		claims, err := shortLived.Validate(signed)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Garbage Input", func(t *testing.T) {
		claims, err := svc.Validate("not.a.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

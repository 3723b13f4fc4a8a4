package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Environment)
		assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
		assert.Equal(t, "vendor_session", cfg.Session.CookieName)
		assert.Equal(t, 12, cfg.Security.BcryptCost)
		assert.Empty(t, cfg.Database.URL)
	})

	t.Run("Missing JWT Secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "9090")
		t.Setenv("SESSION_TTL_MINUTES", "60")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, time.Hour, cfg.Session.TTL)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("Invalid Int Falls Back", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("BCRYPT_COST", "not-a-number")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Security.BcryptCost)
	})
}

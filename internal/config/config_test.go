package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// pin the keys under test so ambient environment (or a stray .env
	// picked up by godotenv) cannot leak into the assertions
	t.Setenv("APP_PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, "9999", cfg.AppPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}

func TestLoad_IgnoresMalformed(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("COOKIE_SECURE", "yes please")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
}

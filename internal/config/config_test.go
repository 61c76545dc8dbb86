package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "JWT_TTL_HOURS", "SLOT_MINUTES", "BOOKING_LOCK_SECONDS", "CORS_ORIGINS", "SERVER_PORT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 30*time.Minute, cfg.SlotDuration())
	assert.Equal(t, 10*time.Second, cfg.BookingLockTTL)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SLOT_MINUTES", "15")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("VERIFY_EMAIL_DOMAIN", "true")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 15*time.Minute, cfg.SlotDuration())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.VerifyEmailDomain)
}

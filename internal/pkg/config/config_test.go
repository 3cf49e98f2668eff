//go:build unit

package config_test

import (
	"net/url"
	"os"
	"testing"
	"time"

	"pickup-rsvp/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "rsvp")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "rsvp")
	t.Setenv("JWT_SECRET", "a-long-enough-jwt-secret")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_live")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "PKP", cfg.Booking.CodePrefix)
		assert.Equal(t, 8, cfg.Booking.CodeLength)
		assert.Equal(t, 24*time.Hour, cfg.Booking.RefundWindow)
		assert.Equal(t, 12*time.Hour, cfg.JWT.TTL)
		assert.False(t, cfg.Redis.Enabled())
		assert.False(t, cfg.RabbitMQ.Enabled())
		assert.False(t, cfg.Admin.Enabled())
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BOOKING_REFUND_WINDOW", "48h")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 48*time.Hour, cfg.Booking.RefundWindow)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	})

	t.Run("missing required", func(t *testing.T) {
		setRequired(t)
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("webhook secret only optional with mock payments", func(t *testing.T) {
		setRequired(t)
		t.Setenv("STRIPE_WEBHOOK_SECRET", "")

		_, err := config.LoadConfig()
		require.ErrorContains(t, err, "STRIPE_WEBHOOK_SECRET")

		t.Setenv("STRIPE_MOCK", "true")
		_, err = config.LoadConfig()
		assert.NoError(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*config.Config)
		want   string
	}{
		"short code":        {func(c *config.Config) { c.Booking.CodeLength = 3 }, "BOOKING_CODE_LENGTH"},
		"dash in prefix":    {func(c *config.Config) { c.Booking.CodePrefix = "PK-P" }, "BOOKING_CODE_PREFIX"},
		"negative window":   {func(c *config.Config) { c.Booking.RefundWindow = -time.Hour }, "BOOKING_REFUND_WINDOW"},
		"zero notify limit": {func(c *config.Config) { c.Booking.NotificationTimeout = 0 }, "BOOKING_NOTIFICATION_TIMEOUT"},
		"cache without ttl": {func(c *config.Config) { c.Redis.Addr, c.Redis.TTL = "localhost:6379", 0 }, "REDIS_CACHE_TTL"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}

	assert.NoError(t, config.NewTestConfig().Validate())
}

func TestDSN(t *testing.T) {
	cfg := config.NewTestConfig().DB
	cfg.Password = "p@ss/word"

	u, err := url.Parse(cfg.DSN())
	require.NoError(t, err)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss/word", pw)
	assert.Equal(t, "localhost:15433", u.Host)
	assert.Equal(t, "/rsvp_test", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}

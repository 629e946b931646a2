package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "localhost:8084", cfg.RunAddress)
		assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
		assert.Equal(t, 30*time.Second, cfg.EffectRelayInterval)
		assert.True(t, cfg.DefaultMinDeposit.Equal(decimal.NewFromInt(100)))
		assert.True(t, cfg.DefaultMaxWithdrawal.IsZero())
		assert.Equal(t, 10*time.Minute, cfg.RateLimitIdleTTL)
		assert.Equal(t, time.Minute, cfg.RateLimitSweepInt)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("RUN_ADDRESS", ":9000")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("DEFAULT_MIN_WITHDRAWAL", "250.50")
		t.Setenv("EFFECT_RELAY_INTERVAL", "0s")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, ":9000", cfg.RunAddress)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
		assert.True(t, cfg.DefaultMinWithdrawal.Equal(decimal.RequireFromString("250.50")))
		assert.Zero(t, cfg.EffectRelayInterval)
	})

	t.Run("malformed decimal", func(t *testing.T) {
		t.Setenv("DEFAULT_MIN_DEPOSIT", "lots")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

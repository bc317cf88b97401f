package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "STORE", "REDIS_ADDR", "PAYMENT_LATENCY", "PAYMENT_FAILURE_RATE", "SEED_CATALOG", "IDEMPOTENCY_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 100*time.Millisecond, cfg.PaymentLatency)
	assert.InDelta(t, 0.2, cfg.PaymentFailureRate, 1e-9)
	assert.Equal(t, 10*time.Minute, cfg.IdempotencyTTL)
	assert.True(t, cfg.SeedCatalog)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE", "postgres")
	t.Setenv("PAYMENT_LATENCY", "5ms")
	t.Setenv("PAYMENT_FAILURE_RATE", "0")
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, 5*time.Millisecond, cfg.PaymentLatency)
	assert.Zero(t, cfg.PaymentFailureRate)
	assert.False(t, cfg.SeedCatalog)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"STORE":                "mongo",
		"PAYMENT_LATENCY":      "soon",
		"PAYMENT_FAILURE_RATE": "1.5",
		"SEED_CATALOG":         "maybe",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

package application

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmehra2102/orderly/internal/clock"
	"github.com/dmehra2102/orderly/internal/payment/domain"
	"github.com/dmehra2102/orderly/pkg/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixed(v float64) RandomSource {
	return RandomFunc(func() float64 { return v })
}

func TestGateway_Charge(t *testing.T) {
	amount := decimal.RequireFromString("149.97")

	t.Run("roll above failure rate succeeds", func(t *testing.T) {
		g := NewGateway(logging.Discard(), WithLatency(0), WithRandom(fixed(0.8)))

		txn, err := g.Charge(context.Background(), amount, "jane@example.com")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(txn, domain.TransactionPrefix), txn)
		_, err = uuid.Parse(strings.TrimPrefix(txn, domain.TransactionPrefix))
		assert.NoError(t, err)
	})

	t.Run("roll below failure rate declines", func(t *testing.T) {
		g := NewGateway(logging.Discard(), WithLatency(0), WithRandom(fixed(0.1)))

		txn, err := g.Charge(context.Background(), amount, "jane@example.com")
		assert.ErrorIs(t, err, domain.ErrPaymentFailed)
		assert.Empty(t, txn)
		assert.Equal(t, "Payment processing failed", err.Error())
	})

	t.Run("boundary roll succeeds", func(t *testing.T) {
		g := NewGateway(logging.Discard(), WithLatency(0), WithRandom(fixed(DefaultFailureRate)))
		_, err := g.Charge(context.Background(), amount, "jane@example.com")
		assert.NoError(t, err)
	})

	t.Run("failure rate is clamped", func(t *testing.T) {
		always := NewGateway(logging.Discard(), WithLatency(0), WithFailureRate(3), WithRandom(fixed(0.999)))
		_, err := always.Charge(context.Background(), amount, "jane@example.com")
		assert.ErrorIs(t, err, domain.ErrPaymentFailed)

		never := NewGateway(logging.Discard(), WithLatency(0), WithFailureRate(-1), WithRandom(fixed(0)))
		_, err = never.Charge(context.Background(), amount, "jane@example.com")
		assert.NoError(t, err)
	})

	t.Run("transaction ids are unique", func(t *testing.T) {
		g := NewGateway(logging.Discard(), WithLatency(0), WithFailureRate(0),
			WithClock(clock.NewFixed(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))))

		seen := make(map[string]struct{})
		var mu sync.Mutex
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				txn, err := g.Charge(context.Background(), amount, "jane@example.com")
				assert.NoError(t, err)
				mu.Lock()
				seen[txn] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()
		assert.Len(t, seen, 50)
	})
}

func TestGateway_Latency(t *testing.T) {
	g := NewGateway(logging.Discard(), WithLatency(30*time.Millisecond), WithFailureRate(0))

	start := time.Now()
	_, err := g.Charge(context.Background(), decimal.NewFromInt(10), "jane@example.com")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestGateway_ContextCancelled(t *testing.T) {
	rolled := false
	g := NewGateway(logging.Discard(),
		WithLatency(time.Hour),
		WithRandom(RandomFunc(func() float64 { rolled = true; return 0.9 })),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Charge(ctx, decimal.NewFromInt(10), "jane@example.com")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, domain.ErrPaymentFailed)
	assert.False(t, rolled)
}

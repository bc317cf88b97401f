package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmehra2102/orderly/internal/clock"
	"github.com/dmehra2102/orderly/internal/payment/domain"
)

const (
	DefaultLatency     = 100 * time.Millisecond
	DefaultFailureRate = 0.2
)

// Gateway is a mock payment provider: it waits a fixed latency, then declines
// a configurable share of charges at random.
type Gateway struct {
	log         *slog.Logger
	clock       clock.Clock
	latency     time.Duration
	failureRate float64

	mu  sync.Mutex
	rnd RandomSource
}

type Option func(*Gateway)

func WithLatency(d time.Duration) Option {
	return func(g *Gateway) {
		if d >= 0 {
			g.latency = d
		}
	}
}

// WithFailureRate sets the decline probability, clamped to [0, 1].
func WithFailureRate(p float64) Option {
	return func(g *Gateway) {
		g.failureRate = min(max(p, 0), 1)
	}
}

func WithRandom(src RandomSource) Option {
	return func(g *Gateway) {
		if src != nil {
			g.rnd = src
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(g *Gateway) {
		if c != nil {
			g.clock = c
		}
	}
}

func NewGateway(log *slog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		log:         log,
		clock:       clock.NewSystem(),
		latency:     DefaultLatency,
		failureRate: DefaultFailureRate,
		rnd:         RandomFunc(rand.Float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Charge bills amount to the customer and returns the transaction reference.
// A declined charge returns domain.ErrPaymentFailed; a cancelled context
// returns the context error without rolling the dice.
func (g *Gateway) Charge(ctx context.Context, amount decimal.Decimal, customerEmail string) (string, error) {
	if g.latency > 0 {
		t := time.NewTimer(g.latency)
		select {
		case <-ctx.Done():
			t.Stop()
			return "", fmt.Errorf("charge %s: %w", amount.StringFixed(2), ctx.Err())
		case <-t.C:
		}
	}

	g.mu.Lock()
	roll := g.rnd.Float64()
	g.mu.Unlock()

	if roll < g.failureRate {
		g.log.WarnContext(ctx, "payment declined", "amount", amount.StringFixed(2), "customer_email", customerEmail)
		return "", domain.ErrPaymentFailed
	}

	c := domain.Charge{
		TransactionID: domain.NewTransactionID(),
		Amount:        amount,
		CustomerEmail: customerEmail,
		ChargedAt:     g.clock.Now(),
	}
	g.log.InfoContext(ctx, "payment accepted",
		"transaction_id", c.TransactionID,
		"amount", c.Amount.StringFixed(2),
		"customer_email", c.CustomerEmail,
		"charged_at", c.ChargedAt,
	)
	return c.TransactionID, nil
}

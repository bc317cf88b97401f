//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/orderly/internal/order/domain"
	"github.com/dmehra2102/orderly/internal/testutil"
	"github.com/dmehra2102/orderly/pkg/logging"
)

func completedOrder() domain.Order {
	o := domain.NewOrder("Jane", "jane@example.com", []domain.OrderItem{
		domain.NewOrderItem(1, "Laptop", 2, decimal.RequireFromString("59.99")),
		domain.NewOrderItem(2, "Mouse", 1, decimal.RequireFromString("29.99")),
	}, time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC))
	o.Complete("TXN-42")
	return o
}

func TestRepository(t *testing.T) {
	pool := testutil.Postgres(t)
	repo := NewRepository(logging.Discard(), pool)
	ctx := context.Background()

	t.Run("save and find round trip", func(t *testing.T) {
		testutil.Truncate(t, pool)

		saved, err := repo.Save(ctx, completedOrder())
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		require.Len(t, saved.Items, 2)
		assert.NotZero(t, saved.Items[0].ID)
		assert.Equal(t, saved.ID, saved.Items[1].OrderID)

		got, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, got.ID)
		assert.Equal(t, domain.StatusCompleted, got.Status)
		assert.Equal(t, "TXN-42", got.PaymentTransactionID)
		assert.Equal(t, "149.97", got.TotalAmount.StringFixed(2))
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.UTC), saved.CreatedAt)
		assert.Equal(t, saved.CreatedAt, got.CreatedAt)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "Laptop", got.Items[0].ProductName)
		assert.Equal(t, "119.98", got.Items[0].Subtotal.StringFixed(2))
		assert.Equal(t, saved.Items[1].ID, got.Items[1].ID)
	})

	t.Run("completed order writes one outbox row", func(t *testing.T) {
		testutil.Truncate(t, pool)

		saved, err := repo.Save(ctx, completedOrder())
		require.NoError(t, err)

		var (
			typ     string
			payload []byte
		)
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT type, payload FROM outbox WHERE aggregate_type = 'order'`).Scan(&typ, &payload))
		assert.Equal(t, domain.EventTypeOrderCompleted, typ)

		var ev domain.OrderCompleted
		require.NoError(t, json.Unmarshal(payload, &ev))
		assert.Equal(t, saved.ID, ev.OrderID)
		assert.Equal(t, "149.97", ev.TotalAmount)
	})

	t.Run("unknown order", func(t *testing.T) {
		testutil.Truncate(t, pool)
		_, err := repo.FindByID(ctx, 77)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

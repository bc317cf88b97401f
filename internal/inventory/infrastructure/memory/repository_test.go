package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/orderly/internal/inventory/domain"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	laptop, err := repo.Create(ctx, domain.Product{Name: "Laptop", Price: decimal.RequireFromString("59.99"), StockQuantity: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), laptop.ID)

	mouse, err := repo.Create(ctx, domain.Product{Name: "Mouse", Price: decimal.RequireFromString("29.99"), StockQuantity: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mouse.ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	t.Run("get unknown", func(t *testing.T) {
		_, err := repo.Get(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("adjust stock", func(t *testing.T) {
		p, err := repo.AdjustStock(ctx, laptop.ID, -4)
		require.NoError(t, err)
		assert.Equal(t, 6, p.StockQuantity)

		got, err := repo.Get(ctx, laptop.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, got.StockQuantity)
	})

	t.Run("adjust below zero", func(t *testing.T) {
		_, err := repo.AdjustStock(ctx, mouse.ID, -51)
		require.Error(t, err)

		got, err := repo.Get(ctx, mouse.ID)
		require.NoError(t, err)
		assert.Equal(t, 50, got.StockQuantity)
	})

	t.Run("explicit id advances sequence", func(t *testing.T) {
		_, err := repo.Create(ctx, domain.Product{ID: 10, Name: "Monitor", Price: decimal.NewFromInt(199), StockQuantity: 3})
		require.NoError(t, err)
		next, err := repo.Create(ctx, domain.Product{Name: "Cable", Price: decimal.NewFromInt(5), StockQuantity: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(11), next.ID)

		_, err = repo.Create(ctx, domain.Product{ID: 10, Name: "Duplicate"})
		assert.Error(t, err)
	})
}

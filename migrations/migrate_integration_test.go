//go:build integration

package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/orderly/internal/testutil"
	"github.com/dmehra2102/orderly/migrations"
)

func TestApply_IsIdempotent(t *testing.T) {
	pool := testutil.Postgres(t)
	ctx := context.Background()

	var first int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&first))
	assert.Equal(t, 3, first)

	require.NoError(t, migrations.Apply(ctx, pool))

	var second int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&second))
	assert.Equal(t, first, second)

	for _, table := range []string{"products", "orders", "order_items", "outbox"} {
		var exists bool
		require.NoError(t, pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists))
		assert.True(t, exists, table)
	}
}

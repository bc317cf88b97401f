package main

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventoryapp "github.com/dmehra2102/orderly/internal/inventory/application"
	"github.com/dmehra2102/orderly/internal/inventory/domain"
	inventorygrpc "github.com/dmehra2102/orderly/internal/inventory/infrastructure/grpc"
	"github.com/dmehra2102/orderly/internal/inventory/infrastructure/memory"
	"github.com/dmehra2102/orderly/pkg/logging"
)

func startInventory(t *testing.T) string {
	t.Helper()
	repo := memory.NewRepository()
	_, err := repo.Create(context.Background(), domain.Product{Name: "Mouse", Price: decimal.RequireFromString("29.99"), StockQuantity: 50})
	require.NoError(t, err)
	ledger := inventoryapp.NewLedger(logging.Discard(), repo)
	require.NoError(t, ledger.Reserve(context.Background(), 1, 4))

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	gs := inventorygrpc.NewGRPCServer(logging.Discard(), inventorygrpc.NewServer(logging.Discard(), ledger))
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)
	return lis.Addr().String()
}

func TestRun_Table(t *testing.T) {
	addr := startInventory(t)
	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-addr", addr, "1"}, &out, &errOut))
	assert.Contains(t, out.String(), "AVAILABLE")
	assert.Regexp(t, `1\s+Mouse\s+29.99\s+50\s+4\s+46`, out.String())
}

func TestRun_JSON(t *testing.T) {
	addr := startInventory(t)
	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-addr", addr, "-json", "1"}, &out, &errOut))
	assert.JSONEq(t, `{"productId":"1","productName":"Mouse","price":"29.99","stockQuantity":50,"reserved":4,"available":46}`, out.String())
}

func TestRun_Errors(t *testing.T) {
	addr := startInventory(t)
	var out, errOut bytes.Buffer

	err := run(context.Background(), []string{"-addr", addr}, &out, &errOut)
	assert.ErrorContains(t, err, "at least one product id")

	err = run(context.Background(), []string{"-addr", addr, "abc"}, &out, &errOut)
	assert.ErrorContains(t, err, `product id "abc"`)

	err = run(context.Background(), []string{"-addr", addr, "9"}, &out, &errOut)
	assert.ErrorContains(t, err, "Product not found with id: 9")
}

package application

import (
	"context"

	"github.com/shopspring/decimal"

	inventory "github.com/dmehra2102/orderly/internal/inventory/domain"
	"github.com/dmehra2102/orderly/internal/order/domain"
)

type OrderRepository interface {
	// Save assigns ids to the order and its items and returns the stored copy.
	Save(ctx context.Context, o domain.Order) (domain.Order, error)
	// FindByID returns domain.ErrOrderNotFound for unknown ids.
	FindByID(ctx context.Context, id int64) (domain.Order, error)
}

// StockLedger is the slice of the inventory ledger order placement needs.
type StockLedger interface {
	Get(ctx context.Context, productID int64) (inventory.Product, error)
	Reserve(ctx context.Context, productID int64, qty int) error
	Release(ctx context.Context, productID int64, qty int)
	Commit(ctx context.Context, productID int64, qty int) error
}

type PaymentGateway interface {
	// Charge returns the provider's transaction reference.
	Charge(ctx context.Context, amount decimal.Decimal, customerEmail string) (string, error)
}

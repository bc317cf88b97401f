package application

import (
	"context"

	"github.com/dmehra2102/orderly/internal/inventory/domain"
)

// ProductRepository is the durable side of the ledger: committed stock lives
// here, reservations never do.
type ProductRepository interface {
	// Get returns domain.ErrProductNotFound for unknown ids.
	Get(ctx context.Context, id int64) (domain.Product, error)
	// AdjustStock adds delta to the committed stock and returns the updated product.
	AdjustStock(ctx context.Context, id int64, delta int) (domain.Product, error)
	// Create stores p, assigning an id when p.ID is zero.
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Count(ctx context.Context) (int, error)
}

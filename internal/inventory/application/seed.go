package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dmehra2102/orderly/internal/inventory/domain"
)

// DefaultCatalog is what a fresh store starts with.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{Name: "Laptop", Price: decimal.RequireFromString("59.99"), StockQuantity: 10},
		{Name: "Mouse", Price: decimal.RequireFromString("29.99"), StockQuantity: 50},
		{Name: "Keyboard", Price: decimal.RequireFromString("39.99"), StockQuantity: 25},
	}
}

// Seed inserts products into an empty repository. A non-empty repository is
// left alone and Seed reports zero inserted.
func Seed(ctx context.Context, log *slog.Logger, repo ProductRepository, products []domain.Product) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.InfoContext(ctx, "catalog already present, skipping seed", "products", n)
		return 0, nil
	}
	for _, p := range products {
		created, err := repo.Create(ctx, p)
		if err != nil {
			return 0, fmt.Errorf("seed %q: %w", p.Name, err)
		}
		log.InfoContext(ctx, "seeded product", "product_id", created.ID, "name", created.Name, "stock", created.StockQuantity)
	}
	return len(products), nil
}

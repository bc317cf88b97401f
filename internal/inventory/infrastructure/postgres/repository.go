package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dmehra2102/orderly/internal/inventory/domain"
)

// Repository stores the catalog in the products table. Prices travel as text
// so the NUMERIC column round-trips into decimal.Decimal exactly.
type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Get(ctx context.Context, id int64) (domain.Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, price::text, stock_quantity FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ProductNotFound(id)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *Repository) AdjustStock(ctx context.Context, id int64, delta int) (domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE products SET stock_quantity = stock_quantity + $2
		WHERE id = $1
		RETURNING id, name, price::text, stock_quantity`, id, delta)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ProductNotFound(id)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("adjust stock of product %d by %d: %w", id, delta, err)
	}
	r.log.DebugContext(ctx, "stock adjusted", "product_id", id, "delta", delta, "stock", p.StockQuantity)
	return p, nil
}

func (r *Repository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	var row pgx.Row
	if p.ID == 0 {
		row = r.pool.QueryRow(ctx, `
			INSERT INTO products (name, price, stock_quantity) VALUES ($1, $2::numeric, $3)
			RETURNING id, name, price::text, stock_quantity`,
			p.Name, p.Price.String(), p.StockQuantity)
	} else {
		row = r.pool.QueryRow(ctx, `
			INSERT INTO products (id, name, price, stock_quantity) VALUES ($1, $2, $3::numeric, $4)
			RETURNING id, name, price::text, stock_quantity`,
			p.ID, p.Name, p.Price.String(), p.StockQuantity)
	}
	created, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product %q: %w", p.Name, err)
	}
	return created, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p     domain.Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &price, &p.StockQuantity); err != nil {
		return domain.Product{}, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parse price %q: %w", price, err)
	}
	p.Price = d
	return p, nil
}

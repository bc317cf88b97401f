package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dmehra2102/orderly/internal/order/domain"
	"github.com/dmehra2102/orderly/pkg/tracing"
)

// Repository stores orders and, in the same transaction, an OrderCompleted
// outbox row for the relay to publish.
type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Save(ctx context.Context, o domain.Order) (domain.Order, error) {
	o = o.Clone()
	// timestamptz keeps microseconds; return what FindByID will read back.
	o.CreatedAt = o.CreatedAt.Truncate(time.Microsecond).UTC()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, customer_email, total_amount, status, payment_transaction_id, created_at)
		VALUES ($1, $2, $3::numeric, $4, NULLIF($5, ''), $6)
		RETURNING id`,
		o.CustomerName, o.CustomerEmail, o.TotalAmount.String(), string(o.Status), o.PaymentTransactionID, o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	batch := &pgx.Batch{}
	for _, it := range o.Items {
		batch.Queue(`
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric)
			RETURNING id`,
			o.ID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice.String(), it.Subtotal.String())
	}
	br := tx.SendBatch(ctx, batch)
	for i := range o.Items {
		if err := br.QueryRow().Scan(&o.Items[i].ID); err != nil {
			_ = br.Close()
			return domain.Order{}, fmt.Errorf("insert order item %d: %w", i, err)
		}
		o.Items[i].OrderID = o.ID
	}
	if err := br.Close(); err != nil {
		return domain.Order{}, fmt.Errorf("insert order items: %w", err)
	}

	if o.Status == domain.StatusCompleted {
		payload, err := json.Marshal(domain.NewOrderCompleted(o))
		if err != nil {
			return domain.Order{}, fmt.Errorf("encode event: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO outbox (aggregate_type, aggregate_id, type, payload, headers, traceparent, status)
			VALUES ($1, $2, $3, $4, $5, $6, 'pending')`,
			domain.AggregateType, strconv.FormatInt(o.ID, 10), domain.EventTypeOrderCompleted,
			payload, map[string]string{"content_type": "application/json"}, tracing.Traceparent(ctx))
		if err != nil {
			return domain.Order{}, fmt.Errorf("insert outbox event: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Order{}, fmt.Errorf("commit order: %w", err)
	}
	r.log.DebugContext(ctx, "order stored", "order_id", o.ID, "items", len(o.Items))
	return o, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	var (
		o      domain.Order
		total  string
		status string
		txn    *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, customer_email, total_amount::text, status, payment_transaction_id, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &total, &status, &txn, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.OrderNotFound(id)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %d: %w", id, err)
	}
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return domain.Order{}, fmt.Errorf("parse total %q: %w", total, err)
	}
	o.Status = domain.OrderStatus(status)
	if txn != nil {
		o.PaymentTransactionID = *txn
	}
	o.CreatedAt = o.CreatedAt.UTC()

	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, product_name, quantity, unit_price::text, subtotal::text
		FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			it              domain.OrderItem
			price, subtotal string
		)
		if err := rows.Scan(&it.ID, &it.ProductID, &it.ProductName, &it.Quantity, &price, &subtotal); err != nil {
			return domain.Order{}, fmt.Errorf("scan order item: %w", err)
		}
		if it.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return domain.Order{}, fmt.Errorf("parse unit price %q: %w", price, err)
		}
		if it.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return domain.Order{}, fmt.Errorf("parse subtotal %q: %w", subtotal, err)
		}
		it.OrderID = o.ID
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("read order items: %w", err)
	}
	return o, nil
}

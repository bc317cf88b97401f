package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmehra2102/orderly/internal/inventory/domain"
)

// Ledger tracks committed stock (through the repository) and in-memory
// reservations per product. Every read-check-write sequence for a product runs
// under that product's lock, so concurrent orders cannot both pass the
// availability check for the same units.
//
// Reservations are process local and start empty on every boot.
type Ledger struct {
	log   *slog.Logger
	repo  ProductRepository
	locks *keyedMutex

	mu       sync.Mutex
	reserved map[int64]int
}

func NewLedger(log *slog.Logger, repo ProductRepository) *Ledger {
	return &Ledger{
		log:      log,
		repo:     repo,
		locks:    newKeyedMutex(),
		reserved: make(map[int64]int),
	}
}

func (l *Ledger) Get(ctx context.Context, productID int64) (domain.Product, error) {
	return l.repo.Get(ctx, productID)
}

// Availability is committed stock minus what is currently reserved.
func (l *Ledger) Availability(ctx context.Context, productID int64) (int, error) {
	unlock := l.locks.Lock(productID)
	defer unlock()

	p, err := l.repo.Get(ctx, productID)
	if err != nil {
		return 0, err
	}
	return p.StockQuantity - l.Reserved(productID), nil
}

func (l *Ledger) Reserve(ctx context.Context, productID int64, qty int) error {
	if qty < 1 {
		return fmt.Errorf("reserve %d of product %d: %w", qty, productID, domain.ErrInvalidQuantity)
	}
	unlock := l.locks.Lock(productID)
	defer unlock()

	p, err := l.repo.Get(ctx, productID)
	if err != nil {
		return err
	}

	l.mu.Lock()
	held := l.reserved[productID]
	available := p.StockQuantity - held
	if available < qty {
		l.mu.Unlock()
		return &domain.OutOfStockError{
			ProductID:   productID,
			ProductName: p.Name,
			Available:   available,
			Requested:   qty,
		}
	}
	l.reserved[productID] = held + qty
	l.mu.Unlock()

	l.log.DebugContext(ctx, "stock reserved", "product_id", productID, "qty", qty, "reserved", held+qty)
	return nil
}

// Release gives back up to qty reserved units. Over-release clamps to zero and
// releasing an unreserved product does nothing.
func (l *Ledger) Release(ctx context.Context, productID int64, qty int) {
	if qty < 1 {
		return
	}
	unlock := l.locks.Lock(productID)
	defer unlock()

	left := l.release(productID, qty)
	l.log.DebugContext(ctx, "stock released", "product_id", productID, "qty", qty, "reserved", left)
}

// Commit deducts qty from committed stock and clears the matching reservation.
// qty must not exceed what is reserved for the product.
func (l *Ledger) Commit(ctx context.Context, productID int64, qty int) error {
	if qty < 1 {
		return fmt.Errorf("commit %d of product %d: %w", qty, productID, domain.ErrInvalidQuantity)
	}
	unlock := l.locks.Lock(productID)
	defer unlock()

	if _, err := l.repo.Get(ctx, productID); err != nil {
		return err
	}
	if held := l.Reserved(productID); qty > held {
		return fmt.Errorf("commit %d of product %d with %d reserved: %w", qty, productID, held, domain.ErrCommitExceedsReservation)
	}
	p, err := l.repo.AdjustStock(ctx, productID, -qty)
	if err != nil {
		return fmt.Errorf("deduct stock for product %d: %w", productID, err)
	}
	left := l.release(productID, qty)

	l.log.InfoContext(ctx, "stock committed", "product_id", productID, "qty", qty, "stock", p.StockQuantity, "reserved", left)
	return nil
}

// Reserved returns the quantity currently locked for productID.
func (l *Ledger) Reserved(productID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reserved[productID]
}

func (l *Ledger) Snapshot(ctx context.Context, productID int64) (domain.StockLevel, error) {
	unlock := l.locks.Lock(productID)
	defer unlock()

	p, err := l.repo.Get(ctx, productID)
	if err != nil {
		return domain.StockLevel{}, err
	}
	held := l.Reserved(productID)
	return domain.StockLevel{
		Product:   p,
		Reserved:  held,
		Available: p.StockQuantity - held,
	}, nil
}

func (l *Ledger) release(productID int64, qty int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	left := max(0, l.reserved[productID]-qty)
	if left == 0 {
		delete(l.reserved, productID)
	} else {
		l.reserved[productID] = left
	}
	return left
}

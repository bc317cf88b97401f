package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmehra2102/orderly/internal/inventory/domain"
)

// Repository keeps the catalog in a map. It is the default store and the one
// the ledger tests run against.
type Repository struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{products: make(map[int64]domain.Product)}
}

func (r *Repository) Get(_ context.Context, id int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, domain.ProductNotFound(id)
	}
	return p, nil
}

func (r *Repository) AdjustStock(_ context.Context, id int64, delta int) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, domain.ProductNotFound(id)
	}
	if p.StockQuantity+delta < 0 {
		return domain.Product{}, fmt.Errorf("stock of product %d would drop below zero (%d%+d)", id, p.StockQuantity, delta)
	}
	p.StockQuantity += delta
	r.products[id] = p
	return p, nil
}

func (r *Repository) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	} else if p.ID > r.nextID {
		r.nextID = p.ID
	}
	if _, exists := r.products[p.ID]; exists {
		return domain.Product{}, fmt.Errorf("product %d already exists", p.ID)
	}
	r.products[p.ID] = p
	return p, nil
}

func (r *Repository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

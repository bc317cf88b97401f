package memory

import (
	"context"
	"sync"

	"github.com/dmehra2102/orderly/internal/order/domain"
)

// Repository keeps orders in process memory. Stored orders are copied on the
// way in and out so callers never alias the store's slices.
type Repository struct {
	mu         sync.RWMutex
	orders     map[int64]domain.Order
	nextOrder  int64
	nextItemID int64
}

func NewRepository() *Repository {
	return &Repository{orders: make(map[int64]domain.Order)}
}

func (r *Repository) Save(_ context.Context, o domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o = o.Clone()
	if o.ID == 0 {
		r.nextOrder++
		o.ID = r.nextOrder
	} else if o.ID > r.nextOrder {
		r.nextOrder = o.ID
	}
	for i := range o.Items {
		if o.Items[i].ID == 0 {
			r.nextItemID++
			o.Items[i].ID = r.nextItemID
		}
		o.Items[i].OrderID = o.ID
	}
	r.orders[o.ID] = o
	return o.Clone(), nil
}

func (r *Repository) FindByID(_ context.Context, id int64) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.OrderNotFound(id)
	}
	return o.Clone(), nil
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

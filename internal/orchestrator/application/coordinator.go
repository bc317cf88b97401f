package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmehra2102/orderly/internal/orchestrator/domain"
)

// StockReleaser gives reserved units back to the ledger.
type StockReleaser interface {
	Release(ctx context.Context, productID int64, qty int)
}

// Coordinator drives saga bookkeeping and compensation for order placement.
type Coordinator struct {
	log   *slog.Logger
	stock StockReleaser
}

func NewCoordinator(log *slog.Logger, stock StockReleaser) *Coordinator {
	return &Coordinator{log: log, stock: stock}
}

func (c *Coordinator) Begin(ctx context.Context) *domain.Saga {
	s := domain.NewSaga(uuid.NewString())
	c.log.DebugContext(ctx, "saga started", "saga_id", s.ID)
	return s
}

func (c *Coordinator) Advance(ctx context.Context, s *domain.Saga, to domain.SagaState) error {
	from := s.State
	if err := s.Transition(to); err != nil {
		c.log.ErrorContext(ctx, "saga transition rejected", "saga_id", s.ID, "from", from, "to", to)
		return err
	}
	c.log.DebugContext(ctx, "saga advanced", "saga_id", s.ID, "from", from, "to", to)
	return nil
}

func (c *Coordinator) Track(s *domain.Saga, productID int64, qty int) {
	s.Track(productID, qty)
}

// Compensate releases every tracked reservation in request order, moves the
// saga to failed and hands cause back unchanged.
func (c *Coordinator) Compensate(ctx context.Context, s *domain.Saga, cause error) error {
	if err := c.Advance(ctx, s, domain.StateRollingBack); err != nil {
		return err
	}
	for _, r := range s.Reservations {
		c.stock.Release(ctx, r.ProductID, r.Quantity)
	}
	c.log.WarnContext(ctx, "order placement rolled back",
		"saga_id", s.ID,
		"released_lines", len(s.Reservations),
		"err", cause,
	)
	s.Reservations = nil
	if err := c.Advance(ctx, s, domain.StateFailed); err != nil {
		return err
	}
	return cause
}

// Abandon releases a single line that could not be committed after the order
// was already stored. The saga keeps going.
func (c *Coordinator) Abandon(ctx context.Context, s *domain.Saga, r domain.Reservation, cause error) {
	c.stock.Release(ctx, r.ProductID, r.Quantity)
	c.log.ErrorContext(ctx, "stock commit failed after order was stored",
		"saga_id", s.ID,
		"order_id", s.OrderID,
		"product_id", r.ProductID,
		"qty", r.Quantity,
		"err", cause,
	)
}

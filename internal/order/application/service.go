package application

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/orderly/internal/clock"
	orchestrator "github.com/dmehra2102/orderly/internal/orchestrator/application"
	saga "github.com/dmehra2102/orderly/internal/orchestrator/domain"
	"github.com/dmehra2102/orderly/internal/order/domain"
)

type Service struct {
	log      *slog.Logger
	repo     OrderRepository
	stock    StockLedger
	payments PaymentGateway
	sagas    *orchestrator.Coordinator
	clock    clock.Clock
	tracer   trace.Tracer
}

type Option func(*Service)

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func NewService(log *slog.Logger, repo OrderRepository, stock StockLedger, payments PaymentGateway, opts ...Option) *Service {
	s := &Service{
		log:      log,
		repo:     repo,
		stock:    stock,
		payments: payments,
		sagas:    orchestrator.NewCoordinator(log, stock),
		clock:    clock.NewSystem(),
		tracer:   otel.Tracer("orderly/order"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder reserves stock for every line, charges the customer, stores the
// order and only then commits the reserved stock. Any failure before the order
// is stored releases whatever was reserved and returns the original error.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "order.CreateOrder",
		trace.WithAttributes(attribute.Int("order.lines", len(req.Items))))
	defer span.End()

	order, err := s.place(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Order{}, err
	}
	span.SetAttributes(attribute.Int64("order.id", order.ID))
	return order, nil
}

func (s *Service) place(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	if err := req.Validate(); err != nil {
		return domain.Order{}, err
	}

	sg := s.sagas.Begin(ctx)
	if err := s.sagas.Advance(ctx, sg, saga.StateReserving); err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		p, err := s.stock.Get(ctx, line.ProductID)
		if err != nil {
			return domain.Order{}, s.sagas.Compensate(ctx, sg, err)
		}
		if err := s.stock.Reserve(ctx, p.ID, line.Quantity); err != nil {
			return domain.Order{}, s.sagas.Compensate(ctx, sg, err)
		}
		s.sagas.Track(sg, p.ID, line.Quantity)
		items = append(items, domain.NewOrderItem(p.ID, p.Name, line.Quantity, p.Price))
	}
	order := domain.NewOrder(req.CustomerName, req.CustomerEmail, items, s.clock.Now())

	if err := s.sagas.Advance(ctx, sg, saga.StateCharging); err != nil {
		return domain.Order{}, err
	}
	txn, err := s.payments.Charge(ctx, order.TotalAmount, order.CustomerEmail)
	if err != nil {
		return domain.Order{}, s.sagas.Compensate(ctx, sg, err)
	}
	sg.PaymentRef = txn
	order.Complete(txn)

	// The customer is charged: the order must be stored even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	if err := s.sagas.Advance(ctx, sg, saga.StatePersisting); err != nil {
		return domain.Order{}, err
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		s.log.ErrorContext(ctx, "payment taken but order not stored",
			"saga_id", sg.ID,
			"payment_transaction_id", txn,
			"amount", order.TotalAmount.StringFixed(2),
			"customer_email", order.CustomerEmail,
			"err", err,
		)
		return domain.Order{}, s.sagas.Compensate(ctx, sg, fmt.Errorf("save order: %w", err))
	}
	sg.OrderID = saved.ID

	if err := s.sagas.Advance(ctx, sg, saga.StateCommitting); err != nil {
		return domain.Order{}, err
	}
	for _, r := range sg.Reservations {
		if err := s.stock.Commit(ctx, r.ProductID, r.Quantity); err != nil {
			s.sagas.Abandon(ctx, sg, r, err)
		}
	}
	if err := s.sagas.Advance(ctx, sg, saga.StateDone); err != nil {
		return domain.Order{}, err
	}

	s.log.InfoContext(ctx, "order placed",
		"order_id", saved.ID,
		"saga_id", sg.ID,
		"total", saved.TotalAmount.StringFixed(2),
		"payment_transaction_id", txn,
	)
	return saved, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "order.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Order{}, err
	}
	return o, nil
}

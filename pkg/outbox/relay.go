package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

type Store interface {
	LockBatch(ctx context.Context, relayID string, batchSize int, lease time.Duration) ([]Event, error)
	MarkSent(ctx context.Context, ids []int64) error
	// MarkFailed parks the event; it is not picked up again.
	MarkFailed(ctx context.Context, id int64, errMsg string) error
	// Retry puts the event back to pending and bumps its retry count.
	Retry(ctx context.Context, id int64, errMsg string) error
}

type Relay struct {
	log        *slog.Logger
	store      Store
	dispatch   *Dispatcher
	relayID    string
	batchSize  int
	interval   time.Duration
	lease      time.Duration
	maxRetries int
	now        func() time.Time
}

type RelayOption func(*Relay)

func WithBatchSize(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

func WithInterval(d time.Duration) RelayOption {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithMaxRetries(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.maxRetries = n
		}
	}
}

func NewRelay(log *slog.Logger, store Store, dispatch *Dispatcher, relayID string, opts ...RelayOption) *Relay {
	r := &Relay{
		log:        log,
		store:      store,
		dispatch:   dispatch,
		relayID:    relayID,
		batchSize:  100,
		interval:   500 * time.Millisecond,
		lease:      5 * time.Second,
		maxRetries: 5,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Relay) Run(ctx context.Context) error {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("relay stopping", "relay_id", r.relayID)
			return nil
		case <-t.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				r.log.Error("relay batch error", "relay_id", r.relayID, "err", err)
			}
		}
	}
}

// RunOnce locks and dispatches a single batch and reports how many events
// were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.store.LockBatch(ctx, r.relayID, r.batchSize, r.lease)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(events))
	for _, e := range events {
		if e.LeaseExpired(r.now()) {
			r.log.Warn("outbox lease lost, leaving event to the next relay", "event_id", e.ID, "lease_until", e.LeaseUntil)
			continue
		}
		if err := r.dispatch.Dispatch(ctx, e); err != nil {
			r.fail(ctx, e, err)
			continue
		}
		ids = append(ids, e.ID)
	}
	if len(ids) > 0 {
		if err := r.store.MarkSent(ctx, ids); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

func (r *Relay) fail(ctx context.Context, e Event, cause error) {
	var err error
	if errors.Is(cause, ErrPermanent) || e.RetryCount+1 >= r.maxRetries {
		err = r.store.MarkFailed(ctx, e.ID, cause.Error())
		r.log.Warn("outbox event parked", "event_id", e.ID, "retries", e.RetryCount, "err", cause)
	} else {
		err = r.store.Retry(ctx, e.ID, cause.Error())
	}
	if err != nil {
		r.log.Error("relay mark failure error", "event_id", e.ID, "err", err)
	}
}

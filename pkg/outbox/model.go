package outbox

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
)

// Event is a row of the outbox table, written in the same transaction as the
// aggregate change it announces. LockBatch hands it to one relay until
// LeaseUntil; after that any relay may claim it again.
type Event struct {
	ID            int64
	AggregateType string
	AggregateID   string
	Type          string
	Payload       []byte
	Headers       map[string]string
	Traceparent   string
	CreatedAt     time.Time

	Status     Status
	RelayID    string
	LeaseUntil time.Time
	RetryCount int
	LastError  *string
}

// LeaseExpired reports whether the relay holding e has lost it at now.
// An event without a lease never expires.
func (e Event) LeaseExpired(now time.Time) bool {
	return !e.LeaseUntil.IsZero() && !now.Before(e.LeaseUntil)
}

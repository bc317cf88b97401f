package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrPaymentFailed is returned when the gateway declines a charge. Its text is
// shown to API clients as is.
var ErrPaymentFailed = errors.New("Payment processing failed")

const TransactionPrefix = "TXN-"

// Charge is an accepted payment.
type Charge struct {
	TransactionID string
	Amount        decimal.Decimal
	CustomerEmail string
	ChargedAt     time.Time
}

func NewTransactionID() string {
	return TransactionPrefix + uuid.NewString()
}

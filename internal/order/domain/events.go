package domain

import "time"

const (
	AggregateType           = "order"
	EventTypeOrderCompleted = "OrderCompleted"
)

// OrderCompleted is published once a paid order has been stored.
type OrderCompleted struct {
	OrderID              int64                `json:"orderId"`
	CustomerEmail        string               `json:"customerEmail"`
	TotalAmount          string               `json:"totalAmount"`
	PaymentTransactionID string               `json:"paymentTransactionId"`
	Items                []OrderCompletedItem `json:"items"`
	OccurredAt           time.Time            `json:"occurredAt"`
}

type OrderCompletedItem struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

func NewOrderCompleted(o Order) OrderCompleted {
	items := make([]OrderCompletedItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderCompletedItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
		})
	}
	return OrderCompleted{
		OrderID:              o.ID,
		CustomerEmail:        o.CustomerEmail,
		TotalAmount:          o.TotalAmount.StringFixed(2),
		PaymentTransactionID: o.PaymentTransactionID,
		Items:                items,
		OccurredAt:           o.CreatedAt,
	}
}

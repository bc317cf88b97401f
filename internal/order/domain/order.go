package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
	// StatusCancelled is part of the wire contract but no workflow sets it yet.
	StatusCancelled OrderStatus = "CANCELLED"
)

// Order is a placed purchase. Items are owned by the order; Item.OrderID is
// only a back-reference for lookups.
type Order struct {
	ID                   int64
	CustomerName         string
	CustomerEmail        string
	Items                []OrderItem
	TotalAmount          decimal.Decimal
	Status               OrderStatus
	PaymentTransactionID string
	CreatedAt            time.Time
}

type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// NewOrderItem captures the price at order time and computes the subtotal.
func NewOrderItem(productID int64, productName string, qty int, unitPrice decimal.Decimal) OrderItem {
	return OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func NewOrder(customerName, customerEmail string, items []OrderItem, now time.Time) Order {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return Order{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         items,
		TotalAmount:   total,
		Status:        StatusPending,
		CreatedAt:     now,
	}
}

// Complete marks the order as paid with the given transaction reference.
func (o *Order) Complete(transactionID string) {
	o.Status = StatusCompleted
	o.PaymentTransactionID = transactionID
}

// Clone returns a copy that shares no item slice with o.
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}

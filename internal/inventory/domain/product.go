package domain

import "github.com/shopspring/decimal"

// Product is a sellable item. StockQuantity is committed stock: it only goes
// down once an order has been paid for.
type Product struct {
	ID            int64
	Name          string
	Price         decimal.Decimal
	StockQuantity int
}

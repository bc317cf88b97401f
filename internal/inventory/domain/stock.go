package domain

// StockLevel is a point-in-time view of a product's committed and reserved stock.
type StockLevel struct {
	Product   Product
	Reserved  int
	Available int
}

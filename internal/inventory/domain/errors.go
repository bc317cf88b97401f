package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound          = errors.New("product not found")
	ErrOutOfStock               = errors.New("out of stock")
	ErrInvalidQuantity          = errors.New("invalid quantity")
	ErrCommitExceedsReservation = errors.New("commit exceeds reservation")
)

// ProductNotFoundError names the missing id and matches ErrProductNotFound.
type ProductNotFoundError struct {
	ID int64
}

func ProductNotFound(id int64) error {
	return &ProductNotFoundError{ID: id}
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product not found with id: %d", e.ID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// OutOfStockError carries what was asked for and what was left.
type OutOfStockError struct {
	ProductID   int64
	ProductName string
	Available   int
	Requested   int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product: %s. Available: %d, Requested: %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *OutOfStockError) Is(target error) bool {
	return target == ErrOutOfStock
}

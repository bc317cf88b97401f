package domain

import (
	"errors"
	"fmt"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderNotFoundError struct {
	ID int64
}

func OrderNotFound(id int64) error {
	return &OrderNotFoundError{ID: id}
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order not found with id: %d", e.ID)
}

func (e *OrderNotFoundError) Is(target error) bool {
	return target == ErrOrderNotFound
}

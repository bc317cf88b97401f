package application

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid request")

type CreateOrderRequest struct {
	CustomerName  string
	CustomerEmail string
	Items         []LineRequest
}

type LineRequest struct {
	ProductID int64
	Quantity  int
}

// ValidationError lists problems per request field and matches ErrInvalidRequest.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// Validate returns a *ValidationError, or nil when the request can be placed.
func (r CreateOrderRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.CustomerName) == "" {
		fields["customerName"] = "Customer name is required"
	}
	switch email := strings.TrimSpace(r.CustomerEmail); {
	case email == "":
		fields["customerEmail"] = "Customer email is required"
	case !validEmail(email):
		fields["customerEmail"] = "Valid email is required"
	}
	if len(r.Items) == 0 {
		fields["items"] = "Order must contain at least one item"
	}
	for i, line := range r.Items {
		switch {
		case line.ProductID == 0:
			fields[fmt.Sprintf("items[%d].productId", i)] = "Product ID is required"
		case line.ProductID < 0:
			fields[fmt.Sprintf("items[%d].productId", i)] = "Product ID must be positive"
		}
		if line.Quantity < 1 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = "Quantity must be at least 1"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

package http

import (
	"context"
	"errors"
	"net/http"

	inventory "github.com/dmehra2102/orderly/internal/inventory/domain"
	"github.com/dmehra2102/orderly/internal/order/application"
	"github.com/dmehra2102/orderly/internal/order/domain"
	payment "github.com/dmehra2102/orderly/internal/payment/domain"
	"github.com/dmehra2102/orderly/pkg/httpx"
)

const (
	codeProductNotFound = "product_not_found"
	codeOrderNotFound   = "order_not_found"
	codeOutOfStock      = "out_of_stock"
	codePaymentFailed   = "payment_failed"
)

// writeError maps a service error to its status and code. Messages of known
// kinds are shown to the client; anything else is logged and hidden.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteValidation(w, "Validation failed", verr.Fields)
	case errors.Is(err, inventory.ErrProductNotFound):
		httpx.WriteError(w, http.StatusNotFound, codeProductNotFound, rootMessage[*inventory.ProductNotFoundError](err))
	case errors.Is(err, domain.ErrOrderNotFound):
		httpx.WriteError(w, http.StatusNotFound, codeOrderNotFound, rootMessage[*domain.OrderNotFoundError](err))
	case errors.Is(err, inventory.ErrOutOfStock):
		httpx.WriteError(w, http.StatusBadRequest, codeOutOfStock, rootMessage[*inventory.OutOfStockError](err))
	case errors.Is(err, payment.ErrPaymentFailed):
		httpx.WriteError(w, http.StatusBadRequest, codePaymentFailed, payment.ErrPaymentFailed.Error())
	default:
		h.log.ErrorContext(ctx, "order request failed", "err", err)
		httpx.WriteInternal(w)
	}
}

// rootMessage prefers the typed error's own text over any wrapping context.
func rootMessage[T error](err error) string {
	var target T
	if errors.As(err, &target) {
		return target.Error()
	}
	return err.Error()
}

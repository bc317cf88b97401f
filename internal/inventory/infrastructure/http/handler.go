package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmehra2102/orderly/internal/inventory/domain"
	"github.com/dmehra2102/orderly/pkg/httpx"
)

const codeProductNotFound = "product_not_found"

type ProductReader interface {
	Get(ctx context.Context, productID int64) (domain.Product, error)
}

type Handler struct {
	log      *slog.Logger
	products ProductReader
}

func NewHandler(log *slog.Logger, products ProductReader) *Handler {
	return &Handler{log: log, products: products}
}

// Routes mounts the inventory endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/inventory/{productId}", h.getProductStock)
}

type stockView struct {
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	Price         string `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
}

func (h *Handler) getProductStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil || id < 1 {
		httpx.WriteValidation(w, "Invalid product id", map[string]string{"productId": "must be a positive integer"})
		return
	}

	p, err := h.products.Get(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		httpx.WriteError(w, http.StatusNotFound, codeProductNotFound, err.Error())
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "get product failed", "product_id", id, "err", err)
		httpx.WriteInternal(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, stockView{
		ProductID:     p.ID,
		ProductName:   p.Name,
		Price:         p.Price.StringFixed(2),
		StockQuantity: p.StockQuantity,
	})
}

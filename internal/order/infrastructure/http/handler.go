package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/orderly/internal/order/application"
	"github.com/dmehra2102/orderly/internal/order/domain"
	"github.com/dmehra2102/orderly/pkg/httpx"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req application.CreateOrderRequest) (domain.Order, error)
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
}

type Handler struct {
	log     *slog.Logger
	service OrderService
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service OrderService) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("orderly/order-http"),
	}
}

// Routes mounts the order endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{orderId}", h.getOrder)
}

type createOrderReq struct {
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
	Items         []orderLineReq `json:"items"`
}

type orderLineReq struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (r createOrderReq) toApplication() application.CreateOrderRequest {
	lines := make([]application.LineRequest, 0, len(r.Items))
	for _, it := range r.Items {
		var line application.LineRequest
		if it.ProductID != nil {
			line.ProductID = *it.ProductID
		}
		if it.Quantity != nil {
			line.Quantity = *it.Quantity
		}
		lines = append(lines, line)
	}
	return application.CreateOrderRequest{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Items:         lines,
	}
}

type orderView struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	TotalAmount   string          `json:"totalAmount"`
	Status        string          `json:"status"`
	OrderDate     time.Time       `json:"orderDate"`
	Items         []orderItemView `json:"items"`
}

type orderItemView struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Subtotal    string `json:"subtotal"`
}

func newOrderView(o domain.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemView{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice.StringFixed(2),
			Subtotal:    it.Subtotal.StringFixed(2),
		})
	}
	return orderView{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		TotalAmount:   o.TotalAmount.StringFixed(2),
		Status:        string(o.Status),
		OrderDate:     o.CreatedAt,
		Items:         items,
	}
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := h.tracer.Start(ctx, "POST /orders")
	defer span.End()

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidRequestBody, "Invalid request body")
		return
	}

	o, err := h.service.CreateOrder(ctx, req.toApplication())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, newOrderView(o))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil || id < 1 {
		httpx.WriteValidation(w, "Invalid order id", map[string]string{"orderId": "must be a positive integer"})
		return
	}

	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newOrderView(o))
}

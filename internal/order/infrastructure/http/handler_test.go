package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/orderly/internal/clock"
	inventoryapp "github.com/dmehra2102/orderly/internal/inventory/application"
	inventorymem "github.com/dmehra2102/orderly/internal/inventory/infrastructure/memory"
	"github.com/dmehra2102/orderly/internal/order/application"
	"github.com/dmehra2102/orderly/internal/order/domain"
	ordermem "github.com/dmehra2102/orderly/internal/order/infrastructure/memory"
	paymentapp "github.com/dmehra2102/orderly/internal/payment/application"
	"github.com/dmehra2102/orderly/pkg/logging"
)

type fixture struct {
	router *chi.Mux
	ledger *inventoryapp.Ledger
	orders *ordermem.Repository
}

func newFixture(t *testing.T, failureRate float64) fixture {
	t.Helper()
	ctx := context.Background()
	products := inventorymem.NewRepository()
	_, err := inventoryapp.Seed(ctx, logging.Discard(), products, inventoryapp.DefaultCatalog())
	require.NoError(t, err)

	ledger := inventoryapp.NewLedger(logging.Discard(), products)
	orders := ordermem.NewRepository()
	payments := paymentapp.NewGateway(logging.Discard(), paymentapp.WithLatency(0), paymentapp.WithFailureRate(failureRate))
	svc := application.NewService(logging.Discard(), orders, ledger, payments,
		application.WithClock(clock.NewFixed(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))))

	r := chi.NewRouter()
	NewHandler(logging.Discard(), svc).Routes(r)
	return fixture{router: r, ledger: ledger, orders: orders}
}

func (f fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_Created(t *testing.T) {
	f := newFixture(t, 0)

	rec := f.do(http.MethodPost, "/orders", `{
		"customerName": "Jane Doe",
		"customerEmail": "jane@example.com",
		"items": [{"productId": 1, "quantity": 2}, {"productId": 2, "quantity": 1}]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"id": 1,
		"customerName": "Jane Doe",
		"customerEmail": "jane@example.com",
		"totalAmount": "149.97",
		"status": "COMPLETED",
		"orderDate": "2024-05-01T12:00:00Z",
		"items": [
			{"id": 1, "productId": 1, "productName": "Laptop", "quantity": 2, "price": "59.99", "subtotal": "119.98"},
			{"id": 2, "productId": 2, "productName": "Mouse", "quantity": 1, "price": "29.99", "subtotal": "29.99"}
		]
	}`, rec.Body.String())

	got := f.do(http.MethodGet, "/orders/1", "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, rec.Body.String(), got.Body.String())
}

func TestCreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name        string
		failureRate float64
		body        string
		status      int
		want        string
	}{
		{
			name:   "out of stock",
			body:   `{"customerName":"Jane","customerEmail":"jane@example.com","items":[{"productId":1,"quantity":15}]}`,
			status: http.StatusBadRequest,
			want:   `{"error":"Insufficient stock for product: Laptop. Available: 10, Requested: 15","code":"out_of_stock"}`,
		},
		{
			name:   "unknown product",
			body:   `{"customerName":"Jane","customerEmail":"jane@example.com","items":[{"productId":99,"quantity":1}]}`,
			status: http.StatusNotFound,
			want:   `{"error":"Product not found with id: 99","code":"product_not_found"}`,
		},
		{
			name:        "payment declined",
			failureRate: 1,
			body:        `{"customerName":"Jane","customerEmail":"jane@example.com","items":[{"productId":1,"quantity":1}]}`,
			status:      http.StatusBadRequest,
			want:        `{"error":"Payment processing failed","code":"payment_failed"}`,
		},
		{
			name:   "malformed json",
			body:   `{"customerName":`,
			status: http.StatusBadRequest,
			want:   `{"error":"Invalid request body","code":"invalid_request_body"}`,
		},
		{
			name:   "validation",
			body:   `{"customerName":"","customerEmail":"bad","items":[{"quantity":0}]}`,
			status: http.StatusBadRequest,
			want: `{"error":"Validation failed","code":"invalid_request","fields":{
				"customerName":"Customer name is required",
				"customerEmail":"Valid email is required",
				"items[0].productId":"Product ID is required",
				"items[0].quantity":"Quantity must be at least 1"}}`,
		},
		{
			name:   "no items",
			body:   `{"customerName":"Jane","customerEmail":"jane@example.com","items":[]}`,
			status: http.StatusBadRequest,
			want:   `{"error":"Validation failed","code":"invalid_request","fields":{"items":"Order must contain at least one item"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.failureRate)
			rec := f.do(http.MethodPost, "/orders", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
			assert.Zero(t, f.orders.Len())
			assert.Zero(t, f.ledger.Reserved(1))
		})
	}
}

func TestGetOrder_Errors(t *testing.T) {
	f := newFixture(t, 0)

	rec := f.do(http.MethodGet, "/orders/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found with id: 5","code":"order_not_found"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "invalid_request", body["code"])
}

type brokenService struct{}

func (brokenService) CreateOrder(context.Context, application.CreateOrderRequest) (domain.Order, error) {
	return domain.Order{}, errors.New("pq: relation \"orders\" does not exist")
}

func (brokenService) GetOrder(context.Context, int64) (domain.Order, error) {
	return domain.Order{}, errors.New("pq: relation \"orders\" does not exist")
}

func TestUnexpectedErrorIsHidden(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(logging.Discard(), brokenService{}).Routes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred","code":"internal_error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "relation")
}

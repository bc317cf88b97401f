package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	inventoryhttp "github.com/dmehra2102/orderly/internal/inventory/infrastructure/http"
	orderhttp "github.com/dmehra2102/orderly/internal/order/infrastructure/http"
	"github.com/dmehra2102/orderly/pkg/httpx"
	"github.com/dmehra2102/orderly/pkg/idempotency"
)

type routes struct {
	orders    *orderhttp.Handler
	inventory *inventoryhttp.Handler
	// nil disables Idempotency-Key handling
	idem *idempotency.Store
}

func newRouter(log *slog.Logger, rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, httpx.RequestLogger(log), httpx.Recover(log))
	r.NotFound(httpx.NotFound)
	r.MethodNotAllowed(httpx.MethodNotAllowed)

	r.Get("/health", httpx.Health)
	r.Group(func(r chi.Router) {
		if rt.idem != nil {
			r.Use(idempotency.Middleware(rt.idem, log))
		}
		rt.orders.Routes(r)
	})
	rt.inventory.Routes(r)
	return r
}

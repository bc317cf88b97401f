package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/dmehra2102/orderly/internal/config"
	inventoryapp "github.com/dmehra2102/orderly/internal/inventory/application"
	inventorygrpc "github.com/dmehra2102/orderly/internal/inventory/infrastructure/grpc"
	inventoryhttp "github.com/dmehra2102/orderly/internal/inventory/infrastructure/http"
	inventorymem "github.com/dmehra2102/orderly/internal/inventory/infrastructure/memory"
	inventorypg "github.com/dmehra2102/orderly/internal/inventory/infrastructure/postgres"
	orderapp "github.com/dmehra2102/orderly/internal/order/application"
	orderhttp "github.com/dmehra2102/orderly/internal/order/infrastructure/http"
	orderkafka "github.com/dmehra2102/orderly/internal/order/infrastructure/kafka"
	ordermem "github.com/dmehra2102/orderly/internal/order/infrastructure/memory"
	orderpg "github.com/dmehra2102/orderly/internal/order/infrastructure/postgres"
	paymentapp "github.com/dmehra2102/orderly/internal/payment/application"
	"github.com/dmehra2102/orderly/migrations"
	"github.com/dmehra2102/orderly/pkg/idempotency"
	"github.com/dmehra2102/orderly/pkg/logging"
	"github.com/dmehra2102/orderly/pkg/outbox"
	"github.com/dmehra2102/orderly/pkg/shutdown"
	"github.com/dmehra2102/orderly/pkg/tracing"
)

const drainTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("order-service failed", "err", err)
		os.Exit(1)
	}
	log.Info("order-service shutdown complete")
}

type stores struct {
	products inventoryapp.ProductRepository
	orders   orderapp.OrderRepository
	relay    *outbox.Relay
	close    func()
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	tp, err := tracing.Init(ctx, "order-service", cfg.OTLPEndpoint, log)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() { _ = shutdown.Drain(drainTimeout, tp.Shutdown) }()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	if cfg.SeedCatalog {
		if _, err := inventoryapp.Seed(ctx, log, st.products, inventoryapp.DefaultCatalog()); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	ledger := inventoryapp.NewLedger(log, st.products)
	payments := paymentapp.NewGateway(log,
		paymentapp.WithLatency(cfg.PaymentLatency),
		paymentapp.WithFailureRate(cfg.PaymentFailureRate),
	)
	svc := orderapp.NewService(log, st.orders, ledger, payments)

	rt := routes{
		orders:    orderhttp.NewHandler(log, svc),
		inventory: inventoryhttp.NewHandler(log, ledger),
	}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		rt.idem = idempotency.NewStore(rdb, cfg.IdempotencyTTL)
		log.Info("idempotency keys enabled", "redis", cfg.RedisAddr, "ttl", cfg.IdempotencyTTL)
	}

	gs, err := inventorygrpc.Run(log, cfg.GRPCAddr, inventorygrpc.NewServer(log, ledger))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	relayDone := make(chan struct{})
	if st.relay == nil {
		close(relayDone)
	} else {
		go func() {
			defer close(relayDone)
			if err := st.relay.Run(ctx); err != nil {
				log.Error("outbox relay stopped", "err", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      newRouter(log, rt),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		log.Error("http server error", "err", err)
		cancel()
	}

	if err := shutdown.Drain(drainTimeout, srv.Shutdown); err != nil {
		log.Warn("http shutdown incomplete", "err", err)
	}
	if err := shutdown.Drain(drainTimeout, stopGRPC(gs)); err != nil {
		log.Warn("grpc shutdown incomplete", "err", err)
	}
	<-relayDone
	return err
}

func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (stores, error) {
	if cfg.Store == config.StoreMemory {
		return stores{
			products: inventorymem.NewRepository(),
			orders:   ordermem.NewRepository(),
			close:    func() {},
		}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.PGURL)
	if err != nil {
		return stores{}, fmt.Errorf("postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return stores{}, fmt.Errorf("postgres ping: %w", err)
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		pool.Close()
		return stores{}, err
	}

	writer := orderkafka.NewWriter(strings.Split(cfg.KafkaAddr, ","))
	host, _ := os.Hostname()
	relay := outbox.NewRelay(log,
		orderpg.NewOutboxStore(log, pool),
		outbox.NewDispatcher(log, writer, cfg.OutboxTopic),
		"order-service-"+host,
	)
	return stores{
		products: inventorypg.NewRepository(log, pool),
		orders:   orderpg.NewRepository(log, pool),
		relay:    relay,
		close: func() {
			_ = writer.Close()
			pool.Close()
		},
	}, nil
}

// stopGRPC drains in-flight calls and falls back to a hard stop on timeout.
func stopGRPC(gs *grpc.Server) func(context.Context) error {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			gs.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			gs.Stop()
			return ctx.Err()
		}
	}
}

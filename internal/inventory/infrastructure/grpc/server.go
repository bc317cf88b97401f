package grpc

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmehra2102/orderly/internal/inventory/domain"
	pb "github.com/dmehra2102/orderly/internal/inventory/infrastructure/grpc/proto"
)

type StockReader interface {
	Snapshot(ctx context.Context, productID int64) (domain.StockLevel, error)
}

type Server struct {
	pb.UnimplementedInventoryServer
	log   *slog.Logger
	stock StockReader
}

var _ pb.InventoryServer = (*Server)(nil)

func NewServer(log *slog.Logger, stock StockReader) *Server {
	return &Server{log: log, stock: stock}
}

func (s *Server) GetProductStock(ctx context.Context, req *pb.StockRequest) (*pb.StockResponse, error) {
	id := req.GetProductId()
	if id < 1 {
		return nil, status.Errorf(codes.InvalidArgument, "productId must be positive, got %d", id)
	}
	lvl, err := s.stock.Snapshot(ctx, id)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return nil, status.Error(codes.NotFound, err.Error())
	case err != nil:
		s.log.ErrorContext(ctx, "stock snapshot failed", "product_id", id, "err", err)
		return nil, status.Error(codes.Internal, "stock lookup failed")
	}
	return &pb.StockResponse{
		ProductId:     lvl.Product.ID,
		ProductName:   lvl.Product.Name,
		Price:         lvl.Product.Price.StringFixed(2),
		StockQuantity: int32(lvl.Product.StockQuantity),
		Reserved:      int32(lvl.Reserved),
		Available:     int32(lvl.Available),
	}, nil
}

// NewGRPCServer builds a grpc.Server with srv registered and calls logged.
func NewGRPCServer(log *slog.Logger, srv pb.InventoryServer) *grpc.Server {
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(logUnary(log)))
	pb.RegisterInventoryServer(gs, srv)
	return gs
}

// Run listens on addr and serves in the background.
func Run(log *slog.Logger, addr string, srv pb.InventoryServer) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	gs := NewGRPCServer(log, srv)
	go func() {
		if err := gs.Serve(lis); err != nil {
			log.Error("grpc server stopped", "err", err)
		}
	}()
	log.Info("grpc server listening", "addr", lis.Addr().String())
	return gs, nil
}

func logUnary(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.InfoContext(ctx, "grpc call",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}

package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/dmehra2102/orderly/internal/inventory/infrastructure/grpc/proto"
)

type Client struct {
	conn *grpc.ClientConn
	cc   pb.InventoryClient
}

// Dial opens a plaintext connection to an inventory server.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, cc: pb.NewInventoryClient(conn)}, nil
}

func (c *Client) GetProductStock(ctx context.Context, productID int64) (*pb.StockResponse, error) {
	return c.cc.GetProductStock(ctx, &pb.StockRequest{ProductId: productID})
}

func (c *Client) Close() error {
	return c.conn.Close()
}

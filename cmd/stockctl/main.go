// Command stockctl prints live stock levels from a running order-service over
// its gRPC inventory endpoint.
//
//	stockctl [-addr localhost:50051] [-timeout 5s] [-json] <productId>...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"google.golang.org/protobuf/encoding/protojson"

	inventorygrpc "github.com/dmehra2102/orderly/internal/inventory/infrastructure/grpc"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "stockctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stockctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", envOr("GRPC_ADDR", "localhost:50051"), "inventory gRPC address")
	timeout := fs.Duration("timeout", 5*time.Second, "per-call timeout")
	asJSON := fs.Bool("json", false, "print one JSON object per product")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("at least one product id is required")
	}

	ids := make([]int64, 0, fs.NArg())
	for _, a := range fs.Args() {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("product id %q: %w", a, err)
		}
		ids = append(ids, id)
	}

	client, err := inventorygrpc.Dial(*addr)
	if err != nil {
		return err
	}
	defer client.Close()

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	if !*asJSON {
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tRESERVED\tAVAILABLE")
	}
	marshal := protojson.MarshalOptions{EmitUnpopulated: true}
	for _, id := range ids {
		callCtx, cancel := context.WithTimeout(ctx, *timeout)
		resp, err := client.GetProductStock(callCtx, id)
		cancel()
		if err != nil {
			return fmt.Errorf("product %d: %w", id, err)
		}
		if *asJSON {
			b, err := marshal.Marshal(resp)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(stdout, "%s\n", b); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n",
			resp.GetProductId(), resp.GetProductName(), resp.GetPrice(), resp.GetStockQuantity(), resp.GetReserved(), resp.GetAvailable())
	}
	return tw.Flush()
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Package sdk provides a Go client for a cell's status API. The neighbor
// poller uses one client per neighbor; the operator CLI uses it to inspect
// arbitrary cells.
package sdk

import (
	"context"
	"fmt"

	"cellgrid"
	"cellgrid/api/pb"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps a gRPC connection to one cell.
type Client struct {
	conn *grpc.ClientConn
	cell pb.CellClient
}

// Dial creates a client for the given target. The connection is lazy: the
// first RPC triggers the actual connect, so dialing a neighbor that has
// not started yet succeeds and only its queries fail.
func Dial(target string) (*Client, error) {
	conn, err := grpc.NewClient(
		target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	return &Client{conn: conn, cell: pb.NewCellClient(conn)}, nil
}

// Status queries the cell's most recently committed state.
func (c *Client) Status(ctx context.Context) (cellgrid.CellState, error) {
	resp, err := c.cell.GetStatus(ctx, &pb.GetStatusRequest{})
	if err != nil {
		return cellgrid.CellState{}, fmt.Errorf("get status: %w", err)
	}
	return cellgrid.CellState{
		Alive:      resp.GetAlive(),
		Generation: resp.GetGeneration(),
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

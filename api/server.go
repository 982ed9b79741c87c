// Package api exposes this cell's state to its peers over gRPC.
package api

import (
	"context"
	"fmt"
	"net"

	"cellgrid"
	"cellgrid/api/pb"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// Store is the interface the status server needs from the cell state store.
type Store interface {
	Read() cellgrid.CellState
}

// Server answers peer GetStatus queries with the current committed state.
// It is read-only: it never initiates outbound calls and blocks only on
// the store's read lock, so it stays responsive while the tick engine is
// mid-poll.
type Server struct {
	pb.UnimplementedCellServer
	store Store
}

// New creates a status server over the given store.
func New(store Store) *Server {
	return &Server{store: store}
}

func (s *Server) GetStatus(_ context.Context, _ *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	st := s.store.Read()
	return &pb.GetStatusResponse{
		Alive:      st.Alive,
		Generation: st.Generation,
	}, nil
}

// ListenAndServe starts the gRPC server on a TCP address and blocks until
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the gRPC server on an existing listener. Tests use this with
// an in-memory listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	pb.RegisterCellServer(srv, s)

	// Shut down when ctx is cancelled.
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	if err := srv.Serve(ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

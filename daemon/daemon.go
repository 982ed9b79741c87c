// Package daemon composes a full cell node: state store, status server,
// tick engine, and control-plane publisher.
package daemon

import (
	"context"
	"fmt"
	"log/slog"

	"cellgrid"
	"cellgrid/api"
	"cellgrid/cell"
	"cellgrid/config"
	"cellgrid/kube"
	"cellgrid/sdk"

	"golang.org/x/sync/errgroup"
)

// Run wires the node together and blocks until ctx is cancelled. The
// status server and the tick engine run as peers: the server answers
// queries against the store at any time, independent of tick timing.
func Run(ctx context.Context, cfg config.Config) error {
	identity := cellgrid.NewIdentity(cfg.ID, cfg.Width)
	store := cell.NewStore(cfg.InitialAlive())

	neighbors := identity.Neighbors()
	peers := make(map[int]cell.Peer, len(neighbors))
	for _, n := range neighbors {
		client, err := sdk.Dial(cfg.PeerAddr(n))
		if err != nil {
			return fmt.Errorf("dial neighbor %d: %w", n, err)
		}
		defer client.Close()
		peers[n] = client
	}
	slog.Info("neighbors resolved", "id", cfg.ID, "count", len(neighbors), "ids", neighbors)

	engine := cell.New(
		identity,
		store,
		cell.NewPoller(peers, cfg.PollTimeout),
		newPublisher(cfg),
		cfg.Period,
	)
	srv := api.New(store)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.ListenAndServe(ctx, cfg.Listen) })
	g.Go(func() error { return engine.Run(ctx) })
	return g.Wait()
}

// newPublisher returns the in-cluster label publisher, or a nop when the
// node runs outside a cluster. Publishing is best-effort either way.
func newPublisher(cfg config.Config) cell.Publisher {
	client, err := kube.NewInCluster()
	if err != nil {
		slog.Info("control-plane publishing disabled", "reason", err)
		return cell.NopPublisher{}
	}
	return kube.NewPublisher(client, cfg.Namespace, cfg.PodName)
}

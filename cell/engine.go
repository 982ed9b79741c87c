// Package cell implements one node of the grid: the guarded state store,
// the per-tick neighbor poller, and the tick engine that advances the
// cell one generation per period.
package cell

import (
	"context"
	"log/slog"
	"time"

	"cellgrid"
)

// publishTimeout bounds the control-plane label patch so a slow API server
// cannot back up the tick loop.
const publishTimeout = 3 * time.Second

// Engine drives the tick loop: poll neighbors, apply the Life rule against
// the current snapshot, commit the next generation, publish the result.
// The status server reads the same Store concurrently at any time.
type Engine struct {
	identity  cellgrid.Identity
	store     *Store
	poller    *Poller
	publisher Publisher
	period    time.Duration
	clock     Clock
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's clock; tests use a fake.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// New creates an engine for the given identity. A nil publisher disables
// publication.
func New(identity cellgrid.Identity, store *Store, poller *Poller, publisher Publisher, period time.Duration, opts ...Option) *Engine {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	e := &Engine{
		identity:  identity,
		store:     store,
		poller:    poller,
		publisher: publisher,
		period:    period,
		clock:     RealClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes one tick per period until ctx is cancelled, then returns
// nil. Ticks never overlap: a tick that outlasts the period delays the
// next boundary instead of running concurrently with it.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("cell engine started",
		"id", e.identity.ID,
		"x", e.identity.X,
		"y", e.identity.Y,
		"width", e.identity.Width,
		"period", e.period,
	)

	ticker := time.NewTicker(e.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			e.Tick(ctx)
		}
	}
}

// Tick runs a single poll → evaluate → commit → publish sequence. The
// commit is strictly sequenced after every neighbor outcome is resolved.
// Publication happens off the tick path and its failure is dropped.
func (e *Engine) Tick(ctx context.Context) cellgrid.TickOutcome {
	start := e.clock.Now()

	count := e.poller.Poll(ctx)
	prev := e.store.Read()
	next := cellgrid.NextAlive(prev.Alive, count)
	committed := e.store.Commit(next)

	slog.Info("tick",
		"generation", committed.Generation,
		"was_alive", prev.Alive,
		"alive_neighbors", count,
		"alive", committed.Alive,
		"elapsed", e.clock.Now().Sub(start),
	)

	go e.publish(committed.Alive)

	return cellgrid.TickOutcome{
		AliveNeighbors: count,
		PreviousAlive:  prev.Alive,
		NextAlive:      committed.Alive,
	}
}

// publish pushes the committed aliveness best-effort. Errors are logged at
// debug and dropped — never retried, never surfaced to the tick loop.
func (e *Engine) publish(alive bool) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := e.publisher.PublishAlive(ctx, alive); err != nil {
		slog.Debug("status publish failed", "err", err)
	}
}

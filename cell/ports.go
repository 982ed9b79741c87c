package cell

import (
	"context"
	"time"

	"cellgrid"
)

// Clock abstracts time reads for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the real system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Peer is one neighbor's status endpoint. In production this is an
// sdk.Client; tests inject fakes.
type Peer interface {
	Status(ctx context.Context) (cellgrid.CellState, error)
}

// Publisher pushes the committed aliveness to the orchestration control
// plane after each tick. Failure is final: implementations and callers
// never retry, and an error never reaches the tick loop.
type Publisher interface {
	PublishAlive(ctx context.Context, alive bool) error
}

// NopPublisher discards publications. Used when running outside a cluster.
type NopPublisher struct{}

func (NopPublisher) PublishAlive(context.Context, bool) error { return nil }

package cell

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cellgrid"
)

// fakeClock is a deterministic clock for engine tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fakePublisher records published values on a channel so tests can await
// the engine's asynchronous publish.
type fakePublisher struct {
	err       error
	published chan bool
}

func newFakePublisher(err error) *fakePublisher {
	return &fakePublisher{err: err, published: make(chan bool, 16)}
}

func (p *fakePublisher) PublishAlive(_ context.Context, alive bool) error {
	p.published <- alive
	return p.err
}

func (p *fakePublisher) await(t *testing.T) bool {
	t.Helper()
	select {
	case v := <-p.published:
		return v
	case <-time.After(time.Second):
		t.Fatal("publisher was not notified")
		return false
	}
}

func newTestEngine(id, width int, initialAlive bool, peers map[int]Peer, pub Publisher) *Engine {
	return New(
		cellgrid.NewIdentity(id, width),
		NewStore(initialAlive),
		NewPoller(peers, 0),
		pub,
		time.Hour, // Run is never used in these tests; Tick is driven directly
		WithClock(&fakeClock{now: time.Unix(1700000000, 0)}),
	)
}

func TestTickSequence(t *testing.T) {
	tests := []struct {
		name         string
		initialAlive bool
		peers        map[int]Peer
		wantCount    int
		wantAlive    bool
	}{
		{
			name:         "live cell with two live neighbors survives",
			initialAlive: true,
			peers: map[int]Peer{
				1: &fakePeer{alive: true},
				3: &fakePeer{alive: true},
				4: &fakePeer{alive: false},
			},
			wantCount: 2,
			wantAlive: true,
		},
		{
			name:         "live cell starves with all neighbors unreachable",
			initialAlive: true,
			peers: map[int]Peer{
				1: &fakePeer{err: errUnreachable},
				3: &fakePeer{err: errUnreachable},
				4: &fakePeer{err: errUnreachable},
			},
			wantCount: 0,
			wantAlive: false,
		},
		{
			name:         "dead cell with three live neighbors spawns",
			initialAlive: false,
			peers: map[int]Peer{
				1: &fakePeer{alive: true},
				3: &fakePeer{alive: true},
				4: &fakePeer{alive: true},
			},
			wantCount: 3,
			wantAlive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := newFakePublisher(nil)
			e := newTestEngine(0, 3, tt.initialAlive, tt.peers, pub)

			outcome := e.Tick(context.Background())

			if outcome.AliveNeighbors != tt.wantCount {
				t.Errorf("AliveNeighbors = %d, want %d", outcome.AliveNeighbors, tt.wantCount)
			}
			if outcome.PreviousAlive != tt.initialAlive {
				t.Errorf("PreviousAlive = %v, want %v", outcome.PreviousAlive, tt.initialAlive)
			}
			if outcome.NextAlive != tt.wantAlive {
				t.Errorf("NextAlive = %v, want %v", outcome.NextAlive, tt.wantAlive)
			}

			st := e.store.Read()
			if st.Generation != 1 {
				t.Errorf("generation = %d, want 1", st.Generation)
			}
			if st.Alive != tt.wantAlive {
				t.Errorf("committed alive = %v, want %v", st.Alive, tt.wantAlive)
			}
			if got := pub.await(t); got != tt.wantAlive {
				t.Errorf("published alive = %v, want %v", got, tt.wantAlive)
			}
		})
	}
}

// TestTickCenterCellScenario: on a 3x3 grid the center cell has all eight
// neighbors; with exactly three alive, a live cell stays alive.
func TestTickCenterCellScenario(t *testing.T) {
	peers := map[int]Peer{
		0: &fakePeer{alive: true},
		1: &fakePeer{alive: true},
		2: &fakePeer{alive: true},
		3: &fakePeer{alive: false},
		5: &fakePeer{alive: false},
		6: &fakePeer{alive: false},
		7: &fakePeer{alive: false},
		8: &fakePeer{alive: false},
	}
	pub := newFakePublisher(nil)
	e := newTestEngine(4, 3, true, peers, pub)

	outcome := e.Tick(context.Background())

	if outcome.AliveNeighbors != 3 || !outcome.NextAlive {
		t.Errorf("outcome = %+v, want 3 alive neighbors and NextAlive=true", outcome)
	}
	if st := e.store.Read(); !st.Alive || st.Generation != 1 {
		t.Errorf("state = %+v, want {Alive:true Generation:1}", st)
	}
	pub.await(t)
}

// TestTickCornerCellScenario: corner cell 0 has neighbors {1,3,4}; one
// alive and two unreachable gives count 1, so a dead cell stays dead.
func TestTickCornerCellScenario(t *testing.T) {
	peers := map[int]Peer{
		1: &fakePeer{alive: true},
		3: &fakePeer{err: errUnreachable},
		4: &fakePeer{err: errUnreachable},
	}
	pub := newFakePublisher(nil)
	e := newTestEngine(0, 3, false, peers, pub)

	outcome := e.Tick(context.Background())

	if outcome.AliveNeighbors != 1 || outcome.NextAlive {
		t.Errorf("outcome = %+v, want 1 alive neighbor and NextAlive=false", outcome)
	}
	if st := e.store.Read(); st.Alive || st.Generation != 1 {
		t.Errorf("state = %+v, want {Alive:false Generation:1}", st)
	}
	pub.await(t)
}

// TestTickSurvivesPublishFailure: a failing publisher must not affect
// subsequent ticks or committed state.
func TestTickSurvivesPublishFailure(t *testing.T) {
	pub := newFakePublisher(errors.New("control plane down"))
	e := newTestEngine(0, 3, false, map[int]Peer{
		1: &fakePeer{alive: true},
		3: &fakePeer{alive: true},
		4: &fakePeer{alive: true},
	}, pub)

	for i := 1; i <= 3; i++ {
		e.Tick(context.Background())
		pub.await(t)
		if st := e.store.Read(); st.Generation != uint64(i) {
			t.Fatalf("after tick %d: generation = %d", i, st.Generation)
		}
	}
}

func TestNilPublisherDefaultsToNop(t *testing.T) {
	e := newTestEngine(0, 3, true, map[int]Peer{}, nil)

	// Must not panic.
	e.Tick(context.Background())

	if st := e.store.Read(); st.Generation != 1 {
		t.Errorf("generation = %d, want 1", st.Generation)
	}
}

// TestRunTicksUntilCancelled drives the real ticker loop briefly.
func TestRunTicksUntilCancelled(t *testing.T) {
	pub := newFakePublisher(nil)
	e := New(
		cellgrid.NewIdentity(0, 3),
		NewStore(true),
		NewPoller(map[int]Peer{1: &fakePeer{alive: true}}, 0),
		pub,
		5*time.Millisecond,
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	// Wait for at least two completed ticks.
	pub.await(t)
	pub.await(t)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil on cancellation", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancellation")
	}

	if st := e.store.Read(); st.Generation < 2 {
		t.Errorf("generation = %d, want >= 2", st.Generation)
	}
}

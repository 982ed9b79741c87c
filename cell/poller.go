package cell

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultPollTimeout bounds each neighbor query. An unreachable neighbor
// costs at most this much of a tick, never blocks it indefinitely.
const DefaultPollTimeout = 500 * time.Millisecond

// Poller queries every neighbor once per tick and counts the ones that
// report alive. A neighbor that is unreachable, times out, or errors is
// counted as dead for that tick only; the next tick queries fresh. No
// retries — per-tick freshness makes them unnecessary.
type Poller struct {
	peers   map[int]Peer
	timeout time.Duration
}

// NewPoller creates a poller over the given neighbor peers. timeout bounds
// each individual query; values <= 0 select DefaultPollTimeout.
func NewPoller(peers map[int]Peer, timeout time.Duration) *Poller {
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	return &Poller{peers: peers, timeout: timeout}
}

// Poll queries all neighbors concurrently and blocks until every outcome
// is resolved, then returns the number that reported alive.
func (p *Poller) Poll(ctx context.Context) int {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		alive int
	)
	for id, peer := range p.peers {
		id, peer := id, peer
		wg.Add(1)
		go func() {
			defer wg.Done()
			qctx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			st, err := peer.Status(qctx)
			if err != nil {
				// Fail-open-to-dead: an unresolvable neighbor counts as 0.
				slog.Debug("neighbor query failed", "neighbor", id, "err", err)
				return
			}
			if st.Alive {
				mu.Lock()
				alive++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return alive
}

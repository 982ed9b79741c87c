package cell

import (
	"sync"

	"cellgrid"
)

// Store holds this node's single mutable cell record. Read and Commit are
// mutually exclusive at snapshot granularity: a Read concurrent with a
// Commit observes either the fully-old or fully-new state, never a mix.
// The tick engine is the only writer; the status server reads at any time.
type Store struct {
	mu    sync.RWMutex
	state cellgrid.CellState
}

// NewStore creates a store at generation 0 with the given initial aliveness.
func NewStore(initialAlive bool) *Store {
	return &Store{state: cellgrid.CellState{Alive: initialAlive}}
}

// Read returns a snapshot of the current state.
func (s *Store) Read() cellgrid.CellState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Commit sets the aliveness for the next generation, advances the
// generation counter by one, and returns the new snapshot.
func (s *Store) Commit(nextAlive bool) cellgrid.CellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Alive = nextAlive
	s.state.Generation++
	return s.state
}

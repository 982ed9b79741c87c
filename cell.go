// Package cellgrid holds the domain model for a distributed cellular
// automaton: a 2D grid of independently deployed processes, each owning
// exactly one cell. Nodes discover their neighbors' liveness by direct
// peer queries and evolve on independent clocks — there is no central
// coordinator and no global generation.
package cellgrid

// CellState is the committed state of this node's cell. Generation counts
// completed ticks and never decreases; Alive always reflects the most
// recently committed generation.
type CellState struct {
	Alive      bool
	Generation uint64
}

// TickOutcome records what a single tick observed and decided. It exists
// for logging and tests only and is never persisted.
type TickOutcome struct {
	AliveNeighbors int
	PreviousAlive  bool
	NextAlive      bool
}

package cellgrid

// NextAlive applies the Life transition rule: a live cell survives with 2 or
// 3 live neighbors, a dead cell becomes alive with exactly 3. Total over all
// neighbor counts ≥ 0.
func NextAlive(alive bool, aliveNeighbors int) bool {
	if alive {
		return aliveNeighbors == 2 || aliveNeighbors == 3
	}
	return aliveNeighbors == 3
}

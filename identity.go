package cellgrid

// Identity is this node's fixed place in the grid, derived once at startup
// from its linear id and the grid width. id = y*width + x.
type Identity struct {
	ID    int
	X     int
	Y     int
	Width int
}

// NewIdentity maps a linear id and grid width to grid coordinates.
func NewIdentity(id, width int) Identity {
	return Identity{
		ID:    id,
		X:     id % width,
		Y:     id / width,
		Width: width,
	}
}

// Neighbors returns the linear ids of the Moore neighborhood of this cell,
// clipped at the grid edges (no wraparound). Corner cells have 3 neighbors,
// non-corner edge cells 5, interior cells 8. The result is ordered by
// neighbor id and contains no duplicates.
func (i Identity) Neighbors() []int {
	neighbors := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := i.X+dx, i.Y+dy
			if nx < 0 || nx >= i.Width || ny < 0 || ny >= i.Width {
				continue
			}
			neighbors = append(neighbors, ny*i.Width+nx)
		}
	}
	return neighbors
}

package life

// Step computes the generation after cur. cur is not modified.
//
// Only live cells and their neighbours are considered, so the cost is bounded
// by the population rather than by any area of the plane.
func Step(cur *Grid) *Grid {
	next := &Grid{live: make(map[Cell]struct{}, len(cur.live)), gen: cur.gen + 1}
	seen := make(map[Cell]struct{}, len(cur.live)*len(offsets))

	for alive := range cur.live {
		for i := range offsets {
			c, ok := alive.Neighbour(i)
			if !ok {
				continue
			}
			if _, done := seen[c]; done {
				continue
			}
			seen[c] = struct{}{}
			if Survives(cur.IsAlive(c), cur.countNeighbours(c)) {
				next.live[c] = struct{}{}
			}
		}
	}
	return next
}

// Survives applies Conway's rule to a cell with the given live neighbour count.
func Survives(alive bool, neighbours int) bool {
	return (alive && (neighbours == 2 || neighbours == 3)) || (!alive && neighbours == 3)
}

func (g *Grid) countNeighbours(c Cell) int {
	n := 0
	for i := range offsets {
		if i == Self {
			continue
		}
		nb, ok := c.Neighbour(i)
		if ok && g.IsAlive(nb) {
			n++
		}
	}
	return n
}

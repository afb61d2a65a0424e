package life

import "math"

// Cell is a coordinate on the unbounded plane.
type Cell struct {
	X, Y int64
}

// offsets enumerates the 3x3 block around a cell. Index 4 is the cell itself.
var offsets = [9][2]int64{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Self is the offsets index that maps a cell onto itself.
const Self = 4

// Neighbour returns the cell at offsets[i] from c. It reports false when the
// result would leave the signed 64-bit range on either axis.
func (c Cell) Neighbour(i int) (Cell, bool) {
	x, ok := shift(c.X, offsets[i][0])
	if !ok {
		return Cell{}, false
	}
	y, ok := shift(c.Y, offsets[i][1])
	if !ok {
		return Cell{}, false
	}
	return Cell{X: x, Y: y}, true
}

// Neighbours returns the in-range cells adjacent to c, excluding c.
func (c Cell) Neighbours() []Cell {
	out := make([]Cell, 0, 8)
	for i := range offsets {
		if i == Self {
			continue
		}
		if n, ok := c.Neighbour(i); ok {
			out = append(out, n)
		}
	}
	return out
}

func shift(v, d int64) (int64, bool) {
	switch {
	case d > 0 && v > math.MaxInt64-d:
		return 0, false
	case d < 0 && v < math.MinInt64-d:
		return 0, false
	}
	return v + d, true
}

package life

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrOutOfRange is returned when a coordinate does not fit in a signed 64-bit
// integer.
var ErrOutOfRange = errors.New("coordinate outside signed 64-bit range")

// Grid holds the live cells of one generation. Only live cells are stored.
type Grid struct {
	live map[Cell]struct{}
	gen  int
}

// NewGrid returns an empty grid at generation 0.
func NewGrid() *Grid {
	return &Grid{live: map[Cell]struct{}{}}
}

// Add marks c as alive.
func (g *Grid) Add(c Cell) {
	g.live[c] = struct{}{}
}

// Insert marks (x, y) as alive if both components fit in an int64. Otherwise
// the grid is left unchanged and an error wrapping ErrOutOfRange is returned.
func (g *Grid) Insert(x, y *big.Int) error {
	if x == nil || y == nil || !x.IsInt64() || !y.IsInt64() {
		return errors.Wrapf(ErrOutOfRange, "[Insert] (%v, %v)", x, y)
	}
	g.Add(Cell{X: x.Int64(), Y: y.Int64()})
	return nil
}

// IsAlive reports whether c is a live cell.
func (g *Grid) IsAlive(c Cell) bool {
	_, ok := g.live[c]
	return ok
}

// LiveCells returns the live cells in no particular order.
func (g *Grid) LiveCells() []Cell {
	cells := make([]Cell, 0, len(g.live))
	for c := range g.live {
		cells = append(cells, c)
	}
	return cells
}

// Len returns the number of live cells.
func (g *Grid) Len() int { return len(g.live) }

// Generation returns the generation counter.
func (g *Grid) Generation() int { return g.gen }

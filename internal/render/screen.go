package render

import (
	"image"

	"sparse-life/pkg/sims/life"
)

// Screen maps grid cells onto a pixel surface with (0, 0) at its centre.
type Screen struct {
	Width, Height int
	CellSize      int
}

// Map returns the square covered by c. It reports false when the square lies
// entirely outside the surface. Visibility is decided in cell units first so
// coordinates far from the origin never overflow.
func (s Screen) Map(c life.Cell) (image.Rectangle, bool) {
	if s.CellSize <= 0 {
		return image.Rectangle{}, false
	}
	minX, maxX := visibleSpan(s.Width, s.CellSize)
	minY, maxY := visibleSpan(s.Height, s.CellSize)
	if c.X < minX || c.X > maxX || c.Y < minY || c.Y > maxY {
		return image.Rectangle{}, false
	}
	x := s.Width/2 + int(c.X)*s.CellSize
	y := s.Height/2 + int(c.Y)*s.CellSize
	return image.Rect(x, y, x+s.CellSize, y+s.CellSize), true
}

// Rects maps cells onto the surface, dropping the ones that are not visible.
// The result reuses dst's backing array.
func (s Screen) Rects(dst []image.Rectangle, cells []life.Cell) []image.Rectangle {
	dst = dst[:0]
	for _, c := range cells {
		if r, ok := s.Map(c); ok {
			dst = append(dst, r)
		}
	}
	return dst
}

// visibleSpan returns the inclusive range of cell indices whose square
// [extent/2 + i*px, extent/2 + (i+1)*px) overlaps [0, extent).
func visibleSpan(extent, px int) (int64, int64) {
	half := int64(extent / 2)
	p := int64(px)
	lo := floorDiv(-p-half, p) + 1
	hi := floorDiv(int64(extent)-half-1, p)
	return lo, hi
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

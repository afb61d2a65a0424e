// Package patterns registers the built-in seed patterns. Every pattern is
// placed with its bounding box near the origin so it shows up in the text
// snapshot window.
package patterns

import (
	"sparse-life/internal/core"
	rng "sparse-life/pkg/core"
	"sparse-life/pkg/sims/life"
)

const (
	soupSize    = 16
	soupDensity = 0.35
)

var shapes = map[string][]life.Cell{
	"block":      {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"blinker":    {{-1, 0}, {0, 0}, {1, 0}},
	"glider":     {{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}},
	"rpentomino": {{0, -1}, {1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	"acorn":      {{-2, -1}, {0, 0}, {-3, 1}, {-2, 1}, {1, 1}, {2, 1}, {3, 1}},
	"lwss":       {{-2, -1}, {1, -1}, {2, 0}, {-2, 1}, {2, 1}, {-1, 2}, {0, 2}, {1, 2}, {2, 2}},
}

// Shape returns a copy of the cells of a fixed pattern.
func Shape(name string) ([]life.Cell, bool) {
	cells, ok := shapes[name]
	if !ok {
		return nil, false
	}
	return append([]life.Cell(nil), cells...), true
}

// Soup fills a soupSize square centred on the origin with random cells.
func Soup(g *life.Grid, seed int64) {
	r := rng.NewRNG(seed)
	half := int64(soupSize / 2)
	for y := -half; y < half; y++ {
		for x := -half; x < half; x++ {
			if r.Chance(soupDensity) {
				g.Add(life.Cell{X: x, Y: y})
			}
		}
	}
}

func place(cells []life.Cell) core.Pattern {
	return func(g *life.Grid, _ int64) {
		for _, c := range cells {
			g.Add(c)
		}
	}
}

func init() {
	for name, cells := range shapes {
		core.Register(name, place(cells))
	}
	core.Register("soup", Soup)
}

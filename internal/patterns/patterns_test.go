package patterns

import (
	"testing"

	"sparse-life/internal/core"
	"sparse-life/pkg/sims/life"
)

func seeded(t *testing.T, name string, seed int64) *life.Grid {
	t.Helper()
	p, ok := core.Lookup(name)
	if !ok {
		t.Fatalf("pattern %q not registered", name)
	}
	g := life.NewGrid()
	p(g, seed)
	return g
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"block", "blinker", "glider", "rpentomino", "acorn", "lwss", "soup"} {
		if _, ok := core.Lookup(name); !ok {
			t.Fatalf("pattern %q not registered", name)
		}
	}
}

func TestShapesSeedExactCells(t *testing.T) {
	for name := range shapes {
		cells, _ := Shape(name)
		g := seeded(t, name, 0)
		if g.Len() != len(cells) {
			t.Fatalf("%s seeded %d cells, expected %d", name, g.Len(), len(cells))
		}
		for _, c := range cells {
			if !g.IsAlive(c) {
				t.Fatalf("%s: cell (%d,%d) alive=false, expected true", name, c.X, c.Y)
			}
		}
	}
}

func TestShapePeriods(t *testing.T) {
	tests := []struct {
		name   string
		period int
		dx, dy int64
	}{
		{"block", 1, 0, 0},
		{"blinker", 2, 0, 0},
		{"glider", 4, 1, 1},
		{"lwss", 4, 2, 0},
	}
	for _, tt := range tests {
		g := seeded(t, tt.name, 0)
		for i := 0; i < tt.period; i++ {
			g = life.Step(g)
		}
		cells, _ := Shape(tt.name)
		if g.Len() != len(cells) {
			t.Fatalf("%s after %d steps has %d cells, expected %d", tt.name, tt.period, g.Len(), len(cells))
		}
		for _, c := range cells {
			want := life.Cell{X: c.X + tt.dx, Y: c.Y + tt.dy}
			if !g.IsAlive(want) {
				t.Fatalf("%s: cell (%d,%d) alive=false, expected true", tt.name, want.X, want.Y)
			}
		}
	}
}

func TestShapeReturnsCopy(t *testing.T) {
	cells, _ := Shape("block")
	cells[0] = life.Cell{X: 99, Y: 99}
	again, _ := Shape("block")
	if again[0] == cells[0] {
		t.Fatal("Shape exposed the registry slice")
	}
}

func TestSoupDeterministic(t *testing.T) {
	a := seeded(t, "soup", 42)
	b := seeded(t, "soup", 42)
	if a.Len() == 0 {
		t.Fatal("soup seeded no cells")
	}
	if a.Len() != b.Len() {
		t.Fatalf("equal seeds produced %d and %d cells", a.Len(), b.Len())
	}
	for _, c := range a.LiveCells() {
		if !b.IsAlive(c) {
			t.Fatalf("cell (%d,%d) differs between equal seeds", c.X, c.Y)
		}
		if c.X < -soupSize/2 || c.X >= soupSize/2 || c.Y < -soupSize/2 || c.Y >= soupSize/2 {
			t.Fatalf("cell (%d,%d) outside the soup window", c.X, c.Y)
		}
	}
}

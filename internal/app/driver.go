package app

import (
	"io"

	"sparse-life/internal/textdump"
	"sparse-life/pkg/sims/life"
)

// Driver advances a grid one generation per frame and prints snapshots.
type Driver struct {
	grid     *life.Grid
	dump     io.Writer
	dumpSize int
	maxGens  int
	done     bool
}

// NewDriver returns a driver starting from g. A nil dump disables snapshots.
func NewDriver(g *life.Grid, cfg *Config, dump io.Writer) *Driver {
	return &Driver{grid: g, dump: dump, dumpSize: cfg.DumpSize, maxGens: cfg.MaxGenerations}
}

// Grid returns the current generation.
func (d *Driver) Grid() *life.Grid { return d.grid }

// Done reports whether the driver has stopped.
func (d *Driver) Done() bool { return d.done }

// Start prints the initial generation.
func (d *Driver) Start() error {
	return d.snapshot()
}

// Frame runs one iteration of the loop. When terminate is set, or the
// generation limit was reached by an earlier frame, it stops without stepping
// and reports true.
func (d *Driver) Frame(terminate bool) (bool, error) {
	if d.done {
		return true, nil
	}
	if terminate || (d.maxGens > 0 && d.grid.Generation() >= d.maxGens) {
		d.done = true
		return true, nil
	}
	d.grid = life.Step(d.grid)
	return false, d.snapshot()
}

func (d *Driver) snapshot() error {
	if d.dump == nil {
		return nil
	}
	return textdump.Dump(d.dump, d.grid, d.dumpSize)
}

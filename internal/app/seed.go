package app

import (
	"bufio"
	"log"
	"strings"

	"github.com/pkg/errors"

	"sparse-life/internal/core"
	"sparse-life/internal/input"
	"sparse-life/pkg/sims/life"
)

// Seed builds generation 0 from the configured pattern, or from "(x, y)"
// lines on sc when no pattern is set.
func Seed(cfg *Config, sc *bufio.Scanner, logger *log.Logger) (*life.Grid, error) {
	g := life.NewGrid()
	if cfg.Pattern != "" {
		p, ok := core.Lookup(cfg.Pattern)
		if !ok {
			return nil, errors.Errorf("[Seed] unknown pattern %q (known: %s)", cfg.Pattern, strings.Join(core.Names(), ", "))
		}
		p(g, cfg.Seed)
		return g, nil
	}
	rep, err := input.ReadScanner(sc, g, logger)
	if err != nil {
		return nil, errors.Wrap(err, "[Seed] failed to read initial population")
	}
	if logger != nil && rep.Rejected > 0 {
		logger.Printf("ignored %d of %d coordinates outside the 64-bit range", rep.Rejected, rep.Lines)
	}
	return g, nil
}

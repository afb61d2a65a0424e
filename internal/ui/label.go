// Package ui draws the on-window status line.
package ui

import (
	"strconv"

	"sparse-life/pkg/sims/life"
)

// Label returns the status line shown over the grid.
func Label(g *life.Grid) string {
	return "gen " + strconv.Itoa(g.Generation()) + "  pop " + strconv.Itoa(g.Len())
}

package core

import (
	"sort"

	"sparse-life/pkg/sims/life"
)

// Pattern seeds a grid. seed is only meaningful for random patterns.
type Pattern func(g *life.Grid, seed int64)

var patterns = map[string]Pattern{}

// Register adds a seed pattern under the provided name.
func Register(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns exposes the registry of available seed patterns.
func Patterns() map[string]Pattern {
	return patterns
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

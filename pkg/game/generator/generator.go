// Package generator fills a grid with the corridor maze rooms are later
// carved into. Generators only ever produce OpenPath and Wall cells.
package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"mazerooms/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(rows, cols int, rng *rand.Rand) *world.Grid
	Name() string
}

// Available generators
var (
	DefaultBacktracker = &Backtracker{LoopChance: 0.05}
	OpenFloor          = &Open{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = DefaultBacktracker

var byName = map[string]GridGenerator{
	DefaultBacktracker.Name(): DefaultBacktracker,
	OpenFloor.Name():          OpenFloor,
}

// ByName looks up one of the available generators
func ByName(name string) (GridGenerator, error) {
	gen, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown maze generator %q (have %v)", name, Names())
	}
	return gen, nil
}

// Names lists the available generators, sorted
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

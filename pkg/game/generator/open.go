package generator

import (
	"math/rand"

	"mazerooms/pkg/engine/world"
)

// Open produces a single open hall inside a Wall perimeter
type Open struct{}

// Name returns the name of this generator
func (o *Open) Name() string {
	return "open"
}

// Generate ignores rng; the layout is fixed by the dimensions
func (o *Open) Generate(rows, cols int, rng *rand.Rand) *world.Grid {
	grid := world.NewGrid(rows, cols, world.Wall)
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if grid.IsPlayablePosition(row, col) {
			cell.Kind = world.OpenPath
		}
	})
	return grid
}

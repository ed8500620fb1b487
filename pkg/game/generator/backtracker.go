package generator

import (
	"math/rand"

	"mazerooms/pkg/engine/world"
)

// Backtracker carves a perfect maze with an iterative depth-first backtracker.
// Corridors run through odd rows and columns; even ones hold the walls between
// them. A non-zero LoopChance knocks out extra walls afterwards so the maze
// has cycles.
type Backtracker struct {
	LoopChance float64
}

// Name returns the name of this generator
func (b *Backtracker) Name() string {
	return "backtracker"
}

// Generate returns a rows x cols grid of Wall with OpenPath corridors carved
// through it. The outer ring is always Wall.
func (b *Backtracker) Generate(rows, cols int, rng *rand.Rand) *world.Grid {
	grid := world.NewGrid(rows, cols, world.Wall)
	if rows < 3 || cols < 3 {
		return grid
	}

	start := nearestOdd(grid.CenterPosition())
	grid.SetKind(start, world.OpenPath)
	stack := []world.Coord{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		next, ok := b.unvisitedNeighbor(grid, current, rng)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		// Open the wall between the two corridor cells, then the cell itself
		grid.SetKind(world.Coord{Row: (current.Row + next.Row) / 2, Col: (current.Col + next.Col) / 2}, world.OpenPath)
		grid.SetKind(next, world.OpenPath)
		stack = append(stack, next)
	}

	if b.LoopChance > 0 {
		b.braid(grid, rng)
	}
	return grid
}

// unvisitedNeighbor picks a random corridor cell two steps away that is still solid
func (b *Backtracker) unvisitedNeighbor(grid *world.Grid, c world.Coord, rng *rand.Rand) (world.Coord, bool) {
	dirs := world.ScanOrder()
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, dir := range dirs {
		dr, dc := dir.Delta()
		next := c.Add(dr*2, dc*2)
		if !grid.IsPlayablePosition(next.Row, next.Col) {
			continue
		}
		if kind, _ := grid.KindAt(next); kind == world.Wall {
			return next, true
		}
	}
	return world.Coord{}, false
}

// braid opens interior walls that separate two corridors, each with LoopChance
func (b *Backtracker) braid(grid *world.Grid, rng *rand.Rand) {
	for row := 1; row < grid.Rows()-1; row++ {
		for col := 1; col < grid.Cols()-1; col++ {
			c := world.Coord{Row: row, Col: col}
			if kind, _ := grid.KindAt(c); kind != world.Wall {
				continue
			}
			if !separatesCorridors(grid, c) {
				continue
			}
			if rng.Float64() < b.LoopChance {
				grid.SetKind(c, world.OpenPath)
			}
		}
	}
}

// separatesCorridors reports whether c is a wall with OpenPath on both sides
// along one axis and Wall on both sides of the other.
func separatesCorridors(grid *world.Grid, c world.Coord) bool {
	is := func(dir world.Direction, kind world.Kind) bool {
		k, ok := grid.KindAt(c.Step(dir))
		return ok && k == kind
	}
	vertical := is(world.North, world.OpenPath) && is(world.South, world.OpenPath) &&
		is(world.West, world.Wall) && is(world.East, world.Wall)
	horizontal := is(world.West, world.OpenPath) && is(world.East, world.OpenPath) &&
		is(world.North, world.Wall) && is(world.South, world.Wall)
	return vertical || horizontal
}

// nearestOdd snaps a position onto the odd corridor lattice
func nearestOdd(row, col int) world.Coord {
	if row%2 == 0 {
		row--
	}
	if col%2 == 0 {
		col--
	}
	return world.Coord{Row: row, Col: col}
}

package generator

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"mazerooms/pkg/engine/world"
)

// reachableOpen returns the OpenPath cells reachable from start via N/E/S/W.
func reachableOpen(grid *world.Grid, start world.Coord) mapset.Set[world.Coord] {
	visited := mapset.New[world.Coord]()
	visited.Put(start)
	queue := []world.Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range grid.Neighbors(c) {
			if n.Kind == world.OpenPath && !visited.Has(n.Coord()) {
				visited.Put(n.Coord())
				queue = append(queue, n.Coord())
			}
		}
	}
	return visited
}

func firstOpen(grid *world.Grid) (world.Coord, bool) {
	var found *world.Coord
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if found == nil && cell.Kind == world.OpenPath {
			c := cell.Coord()
			found = &c
		}
	})
	if found == nil {
		return world.Coord{}, false
	}
	return *found, true
}

func assertPerimeterWall(t *testing.T, grid *world.Grid) {
	t.Helper()
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if !grid.IsPlayablePosition(row, col) && cell.Kind != world.Wall {
			t.Errorf("perimeter cell (%d,%d) = %v, want wall", row, col, cell.Kind)
		}
	})
}

func TestBacktracker_Connected(t *testing.T) {
	sizes := []struct{ rows, cols int }{{7, 7}, {21, 41}, {16, 24}, {3, 3}}
	for _, size := range sizes {
		for _, gen := range []*Backtracker{{}, {LoopChance: 0.3}} {
			grid := gen.Generate(size.rows, size.cols, rand.New(rand.NewSource(11)))
			if grid.Rows() != size.rows || grid.Cols() != size.cols {
				t.Fatalf("grid is %dx%d, want %dx%d", grid.Rows(), grid.Cols(), size.rows, size.cols)
			}
			assertPerimeterWall(t, grid)

			start, ok := firstOpen(grid)
			if !ok {
				t.Fatalf("%dx%d maze has no open_path cells", size.rows, size.cols)
			}
			if got, want := reachableOpen(grid, start).Size(), grid.Count(world.OpenPath); got != want {
				t.Errorf("%dx%d loop=%v: %d of %d open cells reachable", size.rows, size.cols, gen.LoopChance, got, want)
			}
		}
	}
}

func TestBacktracker_OnlyCorridorKinds(t *testing.T) {
	grid := DefaultBacktracker.Generate(15, 15, rand.New(rand.NewSource(2)))
	if other := grid.Rows()*grid.Cols() - grid.Count(world.OpenPath) - grid.Count(world.Wall); other != 0 {
		t.Errorf("%d cells are neither open_path nor wall", other)
	}
}

func TestBacktracker_Deterministic(t *testing.T) {
	gen := &Backtracker{LoopChance: 0.2}
	a := gen.Generate(25, 31, rand.New(rand.NewSource(99)))
	b := gen.Generate(25, 31, rand.New(rand.NewSource(99)))
	if !a.Equal(b) {
		t.Error("same seed produced different mazes")
	}

	c := gen.Generate(25, 31, rand.New(rand.NewSource(100)))
	if a.Equal(c) {
		t.Error("different seeds produced identical mazes")
	}
}

func TestBacktracker_LoopsAddCorridors(t *testing.T) {
	perfect := (&Backtracker{}).Generate(31, 31, rand.New(rand.NewSource(4)))
	braided := (&Backtracker{LoopChance: 1}).Generate(31, 31, rand.New(rand.NewSource(4)))
	if braided.Count(world.OpenPath) <= perfect.Count(world.OpenPath) {
		t.Errorf("braided maze has %d open cells, perfect has %d; want more",
			braided.Count(world.OpenPath), perfect.Count(world.OpenPath))
	}
}

func TestOpen(t *testing.T) {
	grid := OpenFloor.Generate(6, 9, nil)
	assertPerimeterWall(t, grid)
	if got, want := grid.Count(world.OpenPath), 4*7; got != want {
		t.Errorf("open_path count = %d, want %d", got, want)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		gen, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if gen.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, gen.Name())
		}
	}
	if _, err := ByName("bsp"); err == nil {
		t.Error("ByName(bsp) error = nil, want error")
	}
}

package world

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when a grid would have no rows or no columns
	ErrEmptyGrid = errors.New("world: grid must have at least one row and one column")
	// ErrNonRectangular is returned when rows differ in length
	ErrNonRectangular = errors.New("world: all grid rows must have the same length")
)

// Grid is a rectangular, row-major sheet of classified cells.
// Its dimensions are fixed at construction.
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a rows x cols grid with every cell set to fill
func NewGrid(rows, cols int, fill Kind) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid{
		cells: make([][]*Cell, rows),
		rows:  rows,
		cols:  cols,
	}
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(row, col, fill)
		}
	}
	return g
}

// FromKinds builds a grid from a row-major matrix of kinds
func FromKinds(kinds [][]Kind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(kinds[0])
	for row, line := range kinds {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", row, len(line), cols, ErrNonRectangular)
		}
	}

	g := NewGrid(len(kinds), cols, Wall)
	for row, line := range kinds {
		for col, kind := range line {
			g.cells[row][col].Kind = kind
		}
	}
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains checks if a coordinate is within grid bounds
func (g *Grid) Contains(c Coord) bool {
	return g.IsValidPosition(c.Row, c.Col)
}

// IsPlayablePosition checks if a position is inside the one-cell perimeter
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// KindAt returns the classification at a coordinate; ok is false out of bounds
func (g *Grid) KindAt(c Coord) (kind Kind, ok bool) {
	cell := g.GetCell(c.Row, c.Col)
	if cell == nil {
		return 0, false
	}
	return cell.Kind, true
}

// SetKind reclassifies the cell at c. Writing outside the grid is an invariant
// violation and panics rather than clamping or wrapping.
func (g *Grid) SetKind(c Coord, kind Kind) {
	cell := g.GetCell(c.Row, c.Col)
	if cell == nil {
		panic(fmt.Sprintf("world: write to %v outside %dx%d grid", c, g.rows, g.cols))
	}
	cell.Kind = kind
}

// Neighbors returns the in-bounds orthogonal neighbours of c in ScanOrder
func (g *Grid) Neighbors(c Coord) []*Cell {
	neighbors := make([]*Cell, 0, 4)
	for _, dir := range ScanOrder() {
		n := c.Step(dir)
		if cell := g.GetCell(n.Row, n.Col); cell != nil {
			neighbors = append(neighbors, cell)
		}
	}
	return neighbors
}

// CenterPosition returns the row and column of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.rows / 2, g.cols / 2
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Count returns how many cells hold the given kind
func (g *Grid) Count(kind Kind) int {
	n := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Kind == kind {
			n++
		}
	})
	return n
}

// Kinds returns a row-major copy of every classification
func (g *Grid) Kinds() [][]Kind {
	out := make([][]Kind, g.rows)
	for row := range out {
		out[row] = make([]Kind, g.cols)
		for col := range out[row] {
			out[row][col] = g.cells[row][col].Kind
		}
	}
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	clone, _ := FromKinds(g.Kinds())
	return clone
}

// Equal reports whether both grids have the same shape and classifications
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col].Kind != other.cells[row][col].Kind {
				return false
			}
		}
	}
	return true
}

// Validate checks the structural invariants of the grid
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 || len(g.cells) != g.rows {
		return ErrEmptyGrid
	}
	for row, line := range g.cells {
		if len(line) != g.cols {
			return fmt.Errorf("row %d: %w", row, ErrNonRectangular)
		}
		for col, cell := range line {
			if cell == nil || cell.Row != row || cell.Col != col {
				return fmt.Errorf("world: cell at %d,%d does not match its position", row, col)
			}
		}
	}
	return nil
}

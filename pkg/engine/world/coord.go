package world

import "fmt"

// Coord is an absolute grid position
type Coord struct {
	Row int
	Col int
}

// String returns "row,col"
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Add offsets the coordinate by the given row and column deltas
func (c Coord) Add(rowDelta, colDelta int) Coord {
	return Coord{Row: c.Row + rowDelta, Col: c.Col + colDelta}
}

// Step returns the adjacent coordinate in the given direction
func (c Coord) Step(dir Direction) Coord {
	return c.Add(dir.Delta())
}

// Anchor is a room's top-left position that may not have been assigned yet.
// The zero value is unset.
type Anchor struct {
	at  Coord
	set bool
}

// AnchorAt returns a set anchor at the given coordinate
func AnchorAt(c Coord) Anchor {
	return Anchor{at: c, set: true}
}

// Coord returns the anchored coordinate and whether the anchor is set
func (a Anchor) Coord() (Coord, bool) {
	return a.at, a.set
}

// IsSet reports whether the anchor has been assigned
func (a Anchor) IsSet() bool {
	return a.set
}

// String returns the coordinate, or "unset"
func (a Anchor) String() string {
	if !a.set {
		return "unset"
	}
	return a.at.String()
}

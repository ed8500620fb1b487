// Package world provides the classified cell grid that rooms are carved into.
// These are engine-level constructs with no knowledge of room shapes.
package world

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Kind is the semantic classification a cell holds
type Kind uint8

// Kind constants
const (
	OpenPath   Kind = iota // Walkable corridor
	Wall                   // Impassable maze wall
	RoomPath               // Room interior floor
	RoomWall               // Room boundary wall
	Door                   // The single entry into a room
	KeyFeature             // Anchor for a key pickup inside a room
)

// AllKinds returns every classification in declaration order
func AllKinds() []Kind {
	return []Kind{OpenPath, Wall, RoomPath, RoomWall, Door, KeyFeature}
}

// String returns the identifier used in logs, dumps and exports
func (k Kind) String() string {
	switch k {
	case OpenPath:
		return "open_path"
	case Wall:
		return "wall"
	case RoomPath:
		return "room_path"
	case RoomWall:
		return "room_wall"
	case Door:
		return "door"
	case KeyFeature:
		return "key_feature"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown cell kind %q", s)
}

// Label returns the localised, human readable name of the kind.
// The translation key is the upper-cased identifier, e.g. KIND_ROOM_WALL.
func (k Kind) Label() string {
	switch k {
	case OpenPath:
		return gotext.Get("KIND_OPEN_PATH")
	case Wall:
		return gotext.Get("KIND_WALL")
	case RoomPath:
		return gotext.Get("KIND_ROOM_PATH")
	case RoomWall:
		return gotext.Get("KIND_ROOM_WALL")
	case Door:
		return gotext.Get("KIND_DOOR")
	case KeyFeature:
		return gotext.Get("KIND_KEY_FEATURE")
	default:
		return k.String()
	}
}

// IsWalkable reports whether a player can stand on a cell of this kind
func (k Kind) IsWalkable() bool {
	switch k {
	case OpenPath, RoomPath, Door, KeyFeature:
		return true
	default:
		return false
	}
}

// Cell represents a single classified cell in the grid.
// Row and Col always match the cell's position in its Grid.
type Cell struct {
	Row  int
	Col  int
	Kind Kind
}

// NewCell creates a new cell at the given position
func NewCell(row, col int, kind Kind) *Cell {
	return &Cell{Row: row, Col: col, Kind: kind}
}

// Coord returns the cell's position
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// Is reports whether the cell holds the given kind; nil cells never match
func (c *Cell) Is(kind Kind) bool {
	return c != nil && c.Kind == kind
}

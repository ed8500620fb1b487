// Package rooms carves fixed-size rooms into a maze grid and connects each one
// to the corridor network through a single door.
//
// The carving algorithm lives in Generate and is shared by every variant.
// Variants embed Base and only supply DecorateInterior.
package rooms

import (
	"fmt"

	"mazerooms/pkg/engine/world"
)

// MinSide is the smallest room height or width. Anything thinner has no
// non-corner border cells to put a door on.
const MinSide = 3

// Strategy describes where a room prefers to be placed. The rooms package only
// records it; the layout package enforces it.
type Strategy int

// Strategy constants
const (
	Centered     Strategy = iota // On the grid centre
	AroundCenter                 // Near, but not on, the grid centre
)

// String returns the identifier used in config and exports
func (s Strategy) String() string {
	switch s {
	case Centered:
		return "centered"
	case AroundCenter:
		return "around_center"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "centered":
		return Centered, nil
	case "around_center":
		return AroundCenter, nil
	default:
		return 0, fmt.Errorf("unknown placement strategy %q", s)
	}
}

// Room is a rectangular footprint that can be carved into a grid.
// Implementations embed Base, which supplies everything except an optional
// DecorateInterior override.
type Room interface {
	Name() string
	Height() int
	Width() int
	Strategy() Strategy
	Anchor() world.Anchor
	Place(at world.Coord) error
	Cells() []world.Coord
	Contains(c world.Coord) bool
	IsBorder(c world.Coord) bool

	// DecorateInterior runs after the footprint and door are carved
	DecorateInterior(g *world.Grid)

	base() *Base
}

// Base holds the shape, placement and footprint shared by all room variants
type Base struct {
	name     string
	height   int
	width    int
	strategy Strategy
	anchor   world.Anchor
	cells    []world.Coord
}

// NewBase returns an unplaced room shape. Sides below MinSide panic because
// the door algorithm cannot serve them.
func NewBase(name string, height, width int, strategy Strategy) Base {
	if height < MinSide || width < MinSide {
		panic(fmt.Sprintf("rooms: %s room is %dx%d, minimum is %dx%d", name, height, width, MinSide, MinSide))
	}
	return Base{
		name:     name,
		height:   height,
		width:    width,
		strategy: strategy,
	}
}

func (b *Base) base() *Base { return b }

// Name returns the variant name
func (b *Base) Name() string { return b.name }

// Height returns the footprint height
func (b *Base) Height() int { return b.height }

// Width returns the footprint width
func (b *Base) Width() int { return b.width }

// Strategy returns the preferred placement
func (b *Base) Strategy() Strategy { return b.strategy }

// Anchor returns the top-left corner, which is unset until Place is called
func (b *Base) Anchor() world.Anchor { return b.anchor }

// Place assigns the anchor and derives the footprint cells from it.
// A room can only be placed once.
func (b *Base) Place(at world.Coord) error {
	if b.anchor.IsSet() {
		return fmt.Errorf("%s room at %v: %w", b.name, b.anchor, ErrAlreadyPlaced)
	}
	if at.Row < 0 || at.Col < 0 {
		return fmt.Errorf("%s room at %v: %w", b.name, at, ErrInvalidAnchor)
	}

	b.anchor = world.AnchorAt(at)
	b.cells = make([]world.Coord, 0, b.height*b.width)
	for di := 0; di < b.height; di++ {
		for dj := 0; dj < b.width; dj++ {
			b.cells = append(b.cells, at.Add(di, dj))
		}
	}
	return nil
}

// Cells returns the footprint in row-major order; nil before Place
func (b *Base) Cells() []world.Coord {
	out := make([]world.Coord, len(b.cells))
	copy(out, b.cells)
	return out
}

// Contains reports whether c lies inside the placed footprint
func (b *Base) Contains(c world.Coord) bool {
	di, dj, ok := b.local(c)
	return ok && di >= 0 && di < b.height && dj >= 0 && dj < b.width
}

// IsBorder reports whether c is on the footprint's outer ring
func (b *Base) IsBorder(c world.Coord) bool {
	if !b.Contains(c) {
		return false
	}
	di, dj, _ := b.local(c)
	return di == 0 || di == b.height-1 || dj == 0 || dj == b.width-1
}

// IsCorner reports whether c is one of the footprint's four corners
func (b *Base) IsCorner(c world.Coord) bool {
	if !b.Contains(c) {
		return false
	}
	di, dj, _ := b.local(c)
	return (di == 0 || di == b.height-1) && (dj == 0 || dj == b.width-1)
}

// DecorateInterior is a no-op; variants override it
func (b *Base) DecorateInterior(g *world.Grid) {}

// SetLocal classifies the footprint cell at local offset (di, dj).
// Offsets outside the footprint panic.
func (b *Base) SetLocal(g *world.Grid, di, dj int, kind world.Kind) {
	if di < 0 || di >= b.height || dj < 0 || dj >= b.width {
		panic(fmt.Sprintf("rooms: local offset %d,%d outside %dx%d %s room", di, dj, b.height, b.width, b.name))
	}
	at := b.mustAnchor()
	b.set(g, at.Add(di, dj), kind)
}

// set is the only path the algorithm writes the grid through
func (b *Base) set(g *world.Grid, c world.Coord, kind world.Kind) {
	b.mustAnchor()
	g.SetKind(c, kind)
}

func (b *Base) mustAnchor() world.Coord {
	at, ok := b.anchor.Coord()
	if !ok {
		panic(fmt.Errorf("%s room: %w", b.name, ErrLocationNotSet))
	}
	return at
}

func (b *Base) local(c world.Coord) (di, dj int, ok bool) {
	at, ok := b.anchor.Coord()
	if !ok {
		return 0, 0, false
	}
	return c.Row - at.Row, c.Col - at.Col, true
}

// fits reports whether the whole footprint lies inside g
func (b *Base) fits(g *world.Grid) bool {
	at, ok := b.anchor.Coord()
	if !ok {
		return false
	}
	return g.Contains(at) && g.Contains(at.Add(b.height-1, b.width-1))
}

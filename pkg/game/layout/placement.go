// Package layout decides where rooms go in a generated maze and carves them in
// a fixed order, retrying on a fresh maze when a room cannot be connected.
package layout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"mazerooms/pkg/engine/logger"
	"mazerooms/pkg/engine/world"
	"mazerooms/pkg/game/rooms"
)

// ErrNoPlacement is returned when a room has nowhere free to go
var ErrNoPlacement = errors.New("no free placement for room")

// Plan is the ordered list of rooms to place and carve
type Plan struct {
	Rooms []rooms.Room
}

// NewPlan builds fresh, unplaced rooms for the named variants
func NewPlan(names []string) (Plan, error) {
	plan := Plan{Rooms: make([]rooms.Room, 0, len(names))}
	for _, name := range names {
		r, err := rooms.New(name)
		if err != nil {
			return Plan{}, err
		}
		plan.Rooms = append(plan.Rooms, r)
	}
	return plan, nil
}

// Place anchors every room in plan order according to its strategy. Rooms stay
// inside the perimeter and keep one cell of clearance from each other.
func (p Plan) Place(grid *world.Grid, rng *rand.Rand) error {
	occupied := mapset.New[world.Coord]()

	for i, r := range p.Rooms {
		at, err := anchorFor(grid, r, occupied, rng)
		if err != nil {
			return fmt.Errorf("room %d (%s): %w", i, r.Name(), err)
		}
		if err := r.Place(at); err != nil {
			return fmt.Errorf("room %d (%s): %w", i, r.Name(), err)
		}
		for _, c := range r.Cells() {
			occupied.Put(c)
		}
		logger.Debug("room placed", "room", r.Name(), "strategy", r.Strategy().String(), "anchor", at.String())
	}
	return nil
}

func anchorFor(grid *world.Grid, r rooms.Room, occupied mapset.Set[world.Coord], rng *rand.Rand) (world.Coord, error) {
	centre := centredAnchor(grid, r)

	switch r.Strategy() {
	case rooms.Centered:
		if !isFree(grid, centre, r.Height(), r.Width(), occupied) {
			return world.Coord{}, fmt.Errorf("grid centre %v is taken: %w", centre, ErrNoPlacement)
		}
		return centre, nil

	case rooms.AroundCenter:
		maxRadius := max(grid.Rows(), grid.Cols())
		for radius := 1; radius <= maxRadius; radius++ {
			candidates := ring(centre, radius)
			rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})
			for _, at := range candidates {
				if isFree(grid, at, r.Height(), r.Width(), occupied) {
					return at, nil
				}
			}
		}
		return world.Coord{}, fmt.Errorf("nothing free around %v: %w", centre, ErrNoPlacement)

	default:
		return world.Coord{}, fmt.Errorf("strategy %v: %w", r.Strategy(), ErrNoPlacement)
	}
}

// centredAnchor is the anchor that puts the room's middle on the grid centre
func centredAnchor(grid *world.Grid, r rooms.Room) world.Coord {
	row, col := grid.CenterPosition()
	return world.Coord{Row: row - r.Height()/2, Col: col - r.Width()/2}
}

// ring lists the anchors at exactly radius steps (Chebyshev) from centre,
// row-major, so shuffling it is reproducible.
func ring(centre world.Coord, radius int) []world.Coord {
	var out []world.Coord
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if max(abs(dr), abs(dc)) != radius {
				continue
			}
			out = append(out, centre.Add(dr, dc))
		}
	}
	return out
}

// isFree reports whether a height x width footprint at anchor stays inside the
// perimeter and keeps a one cell margin from every occupied cell.
func isFree(grid *world.Grid, at world.Coord, height, width int, occupied mapset.Set[world.Coord]) bool {
	if !grid.IsPlayablePosition(at.Row, at.Col) || !grid.IsPlayablePosition(at.Row+height-1, at.Col+width-1) {
		return false
	}
	for row := at.Row - 1; row <= at.Row+height; row++ {
		for col := at.Col - 1; col <= at.Col+width; col++ {
			if occupied.Has(world.Coord{Row: row, Col: col}) {
				return false
			}
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package rooms

import (
	"fmt"

	"mazerooms/pkg/engine/logger"
	"mazerooms/pkg/engine/world"
)

// Rand is the slice of math/rand the carver needs. *rand.Rand satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

// Generate carves r into g: border cells become RoomWall, the rest RoomPath,
// one border cell becomes a Door reachable from the maze, and finally the
// variant decorates the interior.
//
// The grid is not touched when the room is unplaced or does not fit. A
// DoorCarveError leaves the footprint carved but nothing outside it changed.
func Generate(r Room, g *world.Grid, rng Rand) error {
	_, err := GenerateWithResult(r, g, rng)
	return err
}

// GenerateWithResult is Generate, also reporting where the door went
func GenerateWithResult(r Room, g *world.Grid, rng Rand) (DoorResult, error) {
	b := r.base()

	at, ok := b.anchor.Coord()
	if !ok {
		return DoorResult{}, fmt.Errorf("%s room: %w", b.name, ErrLocationNotSet)
	}
	if !b.fits(g) {
		return DoorResult{}, fmt.Errorf("%s room %dx%d at %v in %dx%d grid: %w",
			b.name, b.height, b.width, at, g.Rows(), g.Cols(), ErrOutOfBounds)
	}

	b.carveFootprint(g)

	res, err := b.carveDoor(g, rng)
	if err != nil {
		logger.Warning("door carve failed", "room", b.name, "anchor", at.String(), "error", err)
		return res, err
	}

	r.DecorateInterior(g)

	logger.Debug("room generated",
		"room", b.name,
		"anchor", at.String(),
		"door", res.Door.String(),
		"pass", res.Pass,
	)
	return res, nil
}

// carveFootprint classifies every footprint cell from anchor and shape alone,
// so repeating it yields the same cells.
func (b *Base) carveFootprint(g *world.Grid) {
	for _, c := range b.cells {
		if b.IsBorder(c) {
			b.set(g, c, world.RoomWall)
		} else {
			b.set(g, c, world.RoomPath)
		}
	}
}

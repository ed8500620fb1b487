package rooms

import (
	"errors"
	"fmt"

	"mazerooms/pkg/engine/world"
)

var (
	// ErrLocationNotSet means Generate ran before the room was placed.
	// It is a caller bug and never worth retrying.
	ErrLocationNotSet = errors.New("rooms: room location not set")

	// ErrDoorCarveFailed means no border cell could be connected to the maze
	ErrDoorCarveFailed = errors.New("rooms: door carve failed")

	// ErrOutOfBounds means the placed footprint does not fit in the grid
	ErrOutOfBounds = errors.New("rooms: footprint outside grid")

	// ErrAlreadyPlaced is returned by a second call to Place
	ErrAlreadyPlaced = errors.New("rooms: room already placed")

	// ErrInvalidAnchor is returned for anchors with negative coordinates
	ErrInvalidAnchor = errors.New("rooms: invalid anchor")

	// ErrUnknownVariant is returned by New for unregistered names
	ErrUnknownVariant = errors.New("rooms: unknown room variant")
)

// DoorCarveError describes a room that could not be connected.
// errors.Is(err, ErrDoorCarveFailed) matches it.
type DoorCarveError struct {
	Room       string
	Height     int
	Width      int
	Anchor     world.Coord
	Candidates int
}

func (e *DoorCarveError) Error() string {
	return fmt.Sprintf("rooms: no door for %s room %dx%d at %v (%d candidates, none next to open path or wall)",
		e.Room, e.Height, e.Width, e.Anchor, e.Candidates)
}

func (e *DoorCarveError) Unwrap() error {
	return ErrDoorCarveFailed
}

package layout

import (
	"errors"
	"fmt"

	"mazerooms/pkg/engine/world"
	"mazerooms/pkg/game/rooms"
)

// ErrCorruptSnapshot is returned when a snapshot does not describe a consistent world
var ErrCorruptSnapshot = errors.New("corrupt world snapshot")

// Snapshot is the serialisable form of a World used by exports and the archive
type Snapshot struct {
	Seed     int64        `yaml:"seed"`
	Attempts int          `yaml:"attempts"`
	Rows     int          `yaml:"rows"`
	Cols     int          `yaml:"cols"`
	Rooms    []RoomRecord `yaml:"rooms"`
	Grid     []string     `yaml:"grid"`
}

// RoomRecord is one placed room and its door
type RoomRecord struct {
	Variant  string       `yaml:"variant"`
	Strategy string       `yaml:"strategy"`
	Height   int          `yaml:"height"`
	Width    int          `yaml:"width"`
	Anchor   world.Coord  `yaml:"anchor"`
	Door     world.Coord  `yaml:"door"`
	DoorPass int          `yaml:"door_pass"`
	Opened   *world.Coord `yaml:"opened,omitempty"`
}

// Snapshot captures the world's grid and rooms
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Seed:     w.Seed,
		Attempts: w.Attempts,
		Rows:     w.Grid.Rows(),
		Cols:     w.Grid.Cols(),
		Rooms:    make([]RoomRecord, 0, len(w.Rooms)),
		Grid:     w.Grid.EncodeRows(),
	}
	for i, r := range w.Rooms {
		at, _ := r.Anchor().Coord()
		rec := RoomRecord{
			Variant:  r.Name(),
			Strategy: r.Strategy().String(),
			Height:   r.Height(),
			Width:    r.Width(),
			Anchor:   at,
		}
		if i < len(w.Doors) {
			d := w.Doors[i]
			rec.Door = d.Door
			rec.DoorPass = d.Pass
			if d.Extended() {
				opened := d.Opened
				rec.Opened = &opened
			}
		}
		s.Rooms = append(s.Rooms, rec)
	}
	return s
}

// Restore rebuilds a World from a snapshot, re-creating each room through the
// variant registry and checking it against the stored grid.
func Restore(s Snapshot) (*World, error) {
	grid, err := world.DecodeRows(s.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if grid.Rows() != s.Rows || grid.Cols() != s.Cols {
		return nil, fmt.Errorf("%w: grid is %dx%d, header says %dx%d",
			ErrCorruptSnapshot, grid.Rows(), grid.Cols(), s.Rows, s.Cols)
	}

	w := &World{Grid: grid, Seed: s.Seed, Attempts: s.Attempts}
	for i, rec := range s.Rooms {
		r, err := rooms.New(rec.Variant)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", i, err)
		}
		if r.Height() != rec.Height || r.Width() != rec.Width {
			return nil, fmt.Errorf("%w: room %d (%s) is %dx%d, variant is %dx%d",
				ErrCorruptSnapshot, i, rec.Variant, rec.Height, rec.Width, r.Height(), r.Width())
		}
		if err := r.Place(rec.Anchor); err != nil {
			return nil, fmt.Errorf("room %d: %w", i, err)
		}
		if kind, _ := grid.KindAt(rec.Door); kind != world.Door || !r.IsBorder(rec.Door) {
			return nil, fmt.Errorf("%w: room %d door %v is %v", ErrCorruptSnapshot, i, rec.Door, kind)
		}

		res := rooms.DoorResult{Door: rec.Door, Pass: rec.DoorPass}
		if rec.Opened != nil {
			res.Opened = *rec.Opened
		}
		w.Rooms = append(w.Rooms, r)
		w.Doors = append(w.Doors, res)
	}
	return w, nil
}

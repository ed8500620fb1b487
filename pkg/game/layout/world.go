package layout

import (
	"github.com/zyedidia/generic/mapset"

	"mazerooms/pkg/engine/world"
	"mazerooms/pkg/game/rooms"
)

// World is a maze with its rooms carved in
type World struct {
	Grid     *world.Grid
	Rooms    []rooms.Room
	Doors    []rooms.DoorResult // Doors[i] belongs to Rooms[i]
	Seed     int64
	Attempts int
}

// RoomAt returns the room whose footprint holds c
func (w *World) RoomAt(c world.Coord) (rooms.Room, bool) {
	for _, r := range w.Rooms {
		if r.Contains(c) {
			return r, true
		}
	}
	return nil, false
}

// Entrance returns the entrance room, falling back to the first room
func (w *World) Entrance() (rooms.Room, bool) {
	for _, r := range w.Rooms {
		if _, ok := r.(*rooms.Entrance); ok {
			return r, true
		}
	}
	if len(w.Rooms) > 0 {
		return w.Rooms[0], true
	}
	return nil, false
}

// Reachable returns every walkable cell connected to the entrance interior
func (w *World) Reachable() mapset.Set[world.Coord] {
	visited := mapset.New[world.Coord]()
	entrance, ok := w.Entrance()
	if !ok {
		return visited
	}
	at, ok := entrance.Anchor().Coord()
	if !ok {
		return visited
	}

	start := at.Add(1, 1)
	visited.Put(start)
	queue := []world.Coord{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range w.Grid.Neighbors(current) {
			c := n.Coord()
			if !n.Kind.IsWalkable() || visited.Has(c) {
				continue
			}
			visited.Put(c)
			queue = append(queue, c)
		}
	}
	return visited
}

// Unreachable lists the rooms whose door cannot be walked to from the entrance
func (w *World) Unreachable() []rooms.Room {
	reachable := w.Reachable()
	var out []rooms.Room
	for i, r := range w.Rooms {
		if i >= len(w.Doors) || !reachable.Has(w.Doors[i].Door) {
			out = append(out, r)
		}
	}
	return out
}

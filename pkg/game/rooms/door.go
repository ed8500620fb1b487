package rooms

import (
	"mazerooms/pkg/engine/world"
)

// Door pass identifiers
const (
	PassExistingPath = 1 // Door opened onto an existing OpenPath cell
	PassExtendedPath = 2 // Door opened onto a Wall that was turned into OpenPath
)

// DoorResult reports where a door was carved
type DoorResult struct {
	Door world.Coord
	Pass int

	// Opened is the Wall cell converted to OpenPath; only set for PassExtendedPath
	Opened world.Coord
}

// Extended reports whether the corridor network had to grow by one cell
func (r DoorResult) Extended() bool {
	return r.Pass == PassExtendedPath
}

// doorCandidates returns the footprint's RoomWall cells minus its corners
func (b *Base) doorCandidates(g *world.Grid) []world.Coord {
	var candidates []world.Coord
	for _, c := range b.cells {
		if b.IsCorner(c) {
			continue
		}
		if kind, ok := g.KindAt(c); ok && kind == world.RoomWall {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// carveDoor pierces one non-corner border cell. The first pass looks for a
// candidate already touching OpenPath; the second settles for one touching a
// Wall and opens that wall. Both scan the same shuffled order.
func (b *Base) carveDoor(g *world.Grid, rng Rand) (DoorResult, error) {
	candidates := b.doorCandidates(g)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, c := range candidates {
		if firstNeighbor(g, c, world.OpenPath) != nil {
			b.set(g, c, world.Door)
			return DoorResult{Door: c, Pass: PassExistingPath}, nil
		}
	}

	for _, c := range candidates {
		if wall := firstNeighbor(g, c, world.Wall); wall != nil {
			b.set(g, c, world.Door)
			b.set(g, wall.Coord(), world.OpenPath)
			return DoorResult{Door: c, Pass: PassExtendedPath, Opened: wall.Coord()}, nil
		}
	}

	at, _ := b.anchor.Coord()
	return DoorResult{}, &DoorCarveError{
		Room:       b.name,
		Height:     b.height,
		Width:      b.width,
		Anchor:     at,
		Candidates: len(candidates),
	}
}

// firstNeighbor returns the first in-bounds neighbour of c holding kind
func firstNeighbor(g *world.Grid, c world.Coord, kind world.Kind) *world.Cell {
	for _, n := range g.Neighbors(c) {
		if n.Kind == kind {
			return n
		}
	}
	return nil
}

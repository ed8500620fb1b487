package rooms

import (
	"mazerooms/pkg/engine/world"
)

// Entrance is the player's starting room: plain floor, centred on the grid
type Entrance struct {
	Base
}

// NewEntrance returns an unplaced 3x3 entrance
func NewEntrance() *Entrance {
	return &Entrance{Base: NewBase("entrance", 3, 3, Centered)}
}

// KeyRoom holds the level key on its centre cell
type KeyRoom struct {
	Base
}

// NewKeyRoom returns an unplaced 3x3 key room
func NewKeyRoom() *KeyRoom {
	return &KeyRoom{Base: NewBase("key", 3, 3, AroundCenter)}
}

// DecorateInterior marks the centre cell as the key anchor
func (k *KeyRoom) DecorateInterior(g *world.Grid) {
	k.SetLocal(g, 1, 1, world.KeyFeature)
}

// KeyCell returns where the key sits; ok is false until the room is placed
func (k *KeyRoom) KeyCell() (c world.Coord, ok bool) {
	at, ok := k.anchor.Coord()
	if !ok {
		return world.Coord{}, false
	}
	return at.Add(1, 1), true
}

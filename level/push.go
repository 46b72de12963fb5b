package level

import "github.com/lixenwraith/vi-rogue/vmath"

// ApplyPush resolves bumping into (x, y) while moving in dir
// This is the only map mutation caused by bumping into scenery:
//
//	Floor                 -> Free
//	Wall, Wall beyond     -> Blocked
//	Wall, Floor beyond    -> Pushed (wall slides one cell)
//	Wall, Abyss beyond    -> Tumble (wall fills the pit, both cells become Floor)
//	anything else         -> Blocked
//
// Out-of-bounds cells read as Wall, so walls never leave the map
func (m *Map) ApplyPush(x, y int, dir vmath.Direction) PushResult {
	target := m.TileOr(x, y, Wall)
	if target == Floor {
		return Free
	}
	// An out-of-bounds target reads as Wall but cannot be moved
	if target != Wall || !m.InBounds(x, y) {
		return Blocked
	}

	v := dir.Vector()
	bx, by := x+v.X, y+v.Y

	switch m.TileOr(bx, by, Wall) {
	case Floor:
		m.tiles.Set(x, y, Floor)
		m.tiles.Set(bx, by, Wall)
		return Pushed
	case Abyss:
		m.tiles.Set(x, y, Floor)
		m.tiles.Set(bx, by, Floor)
		return Tumble
	default:
		return Blocked
	}
}

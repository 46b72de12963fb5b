package level

// Neighbor bits of a wall mask
const (
	MaskNorth uint8 = 1 << iota
	MaskEast
	MaskSouth
	MaskWest
)

// WallMask returns which orthogonal neighbors of (x, y) are Wall as a 4-bit value
// Out-of-bounds neighbors count as Wall so border walls join seamlessly
func (m *Map) WallMask(x, y int) uint8 {
	var mask uint8
	if m.TileOr(x, y-1, Wall) == Wall {
		mask |= MaskNorth
	}
	if m.TileOr(x+1, y, Wall) == Wall {
		mask |= MaskEast
	}
	if m.TileOr(x, y+1, Wall) == Wall {
		mask |= MaskSouth
	}
	if m.TileOr(x-1, y, Wall) == Wall {
		mask |= MaskWest
	}
	return mask
}

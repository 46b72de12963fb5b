package render

import "github.com/lixenwraith/vi-rogue/level"

// wallGlyphs maps a level wall mask (N=1, E=2, S=4, W=8) to a box-drawing rune
// Each wall connects toward its wall neighbors so corridors read as outlines
var wallGlyphs = [16]rune{
	'■', // isolated
	'│', // N
	'─', // E
	'└', // N E
	'│', // S
	'│', // N S
	'┌', // E S
	'├', // N E S
	'─', // W
	'┘', // N W
	'─', // E W
	'┴', // N E W
	'┐', // S W
	'┤', // N S W
	'┬', // E S W
	'┼', // N E S W
}

// WallGlyph returns the box-drawing rune for a wall mask
func WallGlyph(mask uint8) rune {
	return wallGlyphs[mask&0x0F]
}

// TileRune picks the display rune for the tile at (x, y)
// Walls do not connect past the map edge, so the border draws as a closed outline
func TileRune(m *level.Map, x, y int, t level.Tile) rune {
	if t != level.Wall {
		return t.Rune()
	}
	mask := m.WallMask(x, y)
	if !m.InBounds(x, y-1) {
		mask &^= level.MaskNorth
	}
	if !m.InBounds(x+1, y) {
		mask &^= level.MaskEast
	}
	if !m.InBounds(x, y+1) {
		mask &^= level.MaskSouth
	}
	if !m.InBounds(x-1, y) {
		mask &^= level.MaskWest
	}
	return WallGlyph(mask)
}

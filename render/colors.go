package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/level"
)

// Tile palette at full light
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbWall       = RGB{169, 177, 214} // Pale blue stone
	RgbWallBg     = RGB{52, 59, 88}    // Darker stone fill
	RgbFloor      = RGB{86, 95, 137}   // Dim dots
	RgbAbyss      = RGB{45, 0, 60}     // Deep purple pit

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(52, 59, 88)
	RgbLivesFull  = tcell.NewRGBColor(255, 80, 80)
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)
)

// TileStyle returns the style of a tile at the given light level
func TileStyle(t level.Tile, light float64) tcell.Style {
	switch t {
	case level.Wall:
		return tcell.StyleDefault.
			Foreground(Dim(RgbWall, light).Color()).
			Background(Dim(RgbWallBg, light).Color())
	case level.Abyss:
		return tcell.StyleDefault.Background(Dim(RgbAbyss, light).Color())
	default:
		return tcell.StyleDefault.
			Foreground(Dim(RgbFloor, light).Color()).
			Background(Dim(RgbBackground, light).Color())
	}
}

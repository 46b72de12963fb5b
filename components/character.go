package components

import "github.com/gdamore/tcell/v2"

// GlyphComponent is how an entity is drawn when its cell is lit
type GlyphComponent struct {
	Rune  rune
	Style tcell.Style
}

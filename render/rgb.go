package render

import "github.com/gdamore/tcell/v2"

// RGB is an 8-bit per channel color used for light blending before conversion to tcell
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
)

// FromColor converts a tcell color; non-RGB colors resolve through tcell's palette
func FromColor(c tcell.Color) RGB {
	r, g, b := c.RGB()
	if r < 0 {
		return RGBBlack
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Color converts back to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	// Pre-calculate invariant
	inv := 1.0 - alpha

	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Dim fades c toward black by light in 0..1
func Dim(c RGB, light float64) RGB {
	return Blend(RGBBlack, c, light)
}

// DimStyle dims both foreground and background of a style, keeping attributes
func DimStyle(s tcell.Style, light float64) tcell.Style {
	fg, bg, attr := s.Decompose()
	out := tcell.StyleDefault.Attributes(attr)
	if fg != tcell.ColorDefault {
		out = out.Foreground(Dim(FromColor(fg), light).Color())
	}
	if bg != tcell.ColorDefault {
		out = out.Background(Dim(FromColor(bg), light).Color())
	}
	return out
}

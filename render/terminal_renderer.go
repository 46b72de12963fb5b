package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// TerminalRenderer draws the lit part of the map and its entities through the camera
// Registered in the render phase, so it only reads tick state
type TerminalRenderer struct {
	screen tcell.Screen
	glyphs *ecs.Filter2[components.PositionComponent, components.GlyphComponent]
}

// NewTerminalRenderer creates a renderer drawing ctx's world onto screen
func NewTerminalRenderer(screen tcell.Screen, ctx *engine.Context) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		glyphs: ecs.NewFilter2[components.PositionComponent, components.GlyphComponent](ctx.World),
	}
}

// ViewSize returns the map viewport for the current screen, excluding the status bar
func (r *TerminalRenderer) ViewSize() (int, int) {
	w, h := r.screen.Size()
	return w, max(h-constants.StatusBarHeight, 0)
}

// Update renders one frame; satisfies engine.System
func (r *TerminalRenderer) Update(ctx *engine.Context) {
	r.RenderFrame(ctx)
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(ctx *engine.Context) {
	defaultStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.Fill(' ', defaultStyle)

	viewW, viewH := r.ViewSize()
	r.drawMap(ctx, viewW, viewH)
	r.drawEntities(ctx, viewW, viewH)
	r.drawStatusBar(ctx, viewH)

	r.screen.Show()
}

// drawMap draws every cell at or above the light threshold; darker cells stay blank
func (r *TerminalRenderer) drawMap(ctx *engine.Context, viewW, viewH int) {
	m := ctx.Map
	m.Each(func(x, y int, t level.Tile, l float64) bool {
		if l < constants.LightThreshold {
			return true
		}
		sp := ctx.Camera.ToScreen(vmath.P(x, y))
		if sp.X < 0 || sp.Y < 0 || sp.X >= viewW || sp.Y >= viewH {
			return true
		}
		r.screen.SetContent(sp.X, sp.Y, TileRune(m, x, y, t), nil, TileStyle(t, l))
		return true
	})
}

// drawEntities draws glyphs on lit cells, dimmed by the cell's light and over the tile background
func (r *TerminalRenderer) drawEntities(ctx *engine.Context, viewW, viewH int) {
	query := r.glyphs.Query()
	for query.Next() {
		pos, glyph := query.Get()
		l, ok := ctx.Map.Light(pos.X, pos.Y)
		if !ok || l < constants.LightThreshold {
			continue
		}
		sp := ctx.Camera.ToScreen(pos.Point())
		if sp.X < 0 || sp.Y < 0 || sp.X >= viewW || sp.Y >= viewH {
			continue
		}

		t := ctx.Map.TileOr(pos.X, pos.Y, level.Floor)
		_, bg, _ := TileStyle(t, l).Decompose()
		style := DimStyle(glyph.Style, l).Background(bg)
		r.screen.SetContent(sp.X, sp.Y, glyph.Rune, nil, style)
	}
}

// drawStatusBar draws lives and turn below the map view
func (r *TerminalRenderer) drawStatusBar(ctx *engine.Context, y int) {
	w, _ := r.screen.Size()
	barStyle := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, barStyle)
	}

	x := 0
	x = r.drawText(x, y, " Lives ", barStyle)
	heartStyle := barStyle.Foreground(RgbLivesFull)
	for i := 0; i < ctx.Lives.Max; i++ {
		heart := '♡'
		if i < ctx.Lives.Count {
			heart = '♥'
		}
		r.screen.SetContent(x, y, heart, nil, heartStyle)
		x++
	}

	x = r.drawText(x, y, fmt.Sprintf("  Turn %d", ctx.Turn), barStyle)
	if ctx.IsPaused.Load() {
		x = r.drawText(x, y, "  PAUSED", barStyle.Bold(true))
	}
	if ctx.GameOver {
		r.drawText(x+2, y, " GAME OVER ", barStyle.Background(RgbGameOverBg).Bold(true))
	}
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

package render

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// newLitContext builds a 5x5 bordered map, lit everywhere except the bottom row
func newLitContext() *engine.Context {
	m := level.NewEmpty(5, 5, true)
	m.Each(func(x, y int, _ level.Tile, _ float64) bool {
		if y < 4 {
			m.SetLight(x, y, 1)
		}
		return true
	})
	return engine.NewContext(m, rand.New(rand.NewSource(1)), nil)
}

func TestRenderMapRespectsLight(t *testing.T) {
	screen := newTestScreen(t, 10, 7)
	ctx := newLitContext()
	r := NewTerminalRenderer(screen, ctx)
	r.RenderFrame(ctx)

	if ch, _, _, _ := screen.GetContent(2, 2); ch != '.' {
		t.Errorf("Expected lit floor '.', got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(0, 0); ch != WallGlyph(level.MaskEast|level.MaskSouth) {
		t.Errorf("Expected corner glyph at (0,0), got %q", ch)
	}
	// Bottom wall row is dark
	if ch, _, _, _ := screen.GetContent(2, 4); ch != ' ' {
		t.Errorf("Expected unlit cell blank, got %q", ch)
	}
}

func TestRenderCameraOffset(t *testing.T) {
	screen := newTestScreen(t, 10, 7)
	ctx := newLitContext()
	ctx.Camera.Offset = vmath.P(3, 1)

	NewTerminalRenderer(screen, ctx).RenderFrame(ctx)

	if ch, _, _, _ := screen.GetContent(3+2, 1+2); ch != '.' {
		t.Errorf("Expected floor shifted by camera, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(2, 2); ch != ' ' {
		t.Errorf("Expected blank left of shifted map, got %q", ch)
	}
}

func TestRenderEntitiesOnlyWhenLit(t *testing.T) {
	screen := newTestScreen(t, 10, 7)
	ctx := newLitContext()
	// Floor cell on the dark bottom interior row
	ctx.Map.SetTile(2, 4, level.Floor)

	glyphs := ecs.NewMap2[components.PositionComponent, components.GlyphComponent](ctx.World)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 100, 0))
	glyphs.NewEntity(&components.PositionComponent{X: 1, Y: 1}, &components.GlyphComponent{Rune: '@', Style: style})
	glyphs.NewEntity(&components.PositionComponent{X: 2, Y: 4}, &components.GlyphComponent{Rune: 'M', Style: style})

	NewTerminalRenderer(screen, ctx).RenderFrame(ctx)

	ch, _, got, _ := screen.GetContent(1, 1)
	if ch != '@' {
		t.Fatalf("Expected lit entity drawn, got %q", ch)
	}
	fg, _, _ := got.Decompose()
	if r, g, b := fg.RGB(); r != 200 || g != 100 || b != 0 {
		t.Errorf("Expected full-light foreground (200,100,0), got (%d,%d,%d)", r, g, b)
	}
	if ch, _, _, _ := screen.GetContent(2, 4); ch == 'M' {
		t.Error("Expected entity on dark cell hidden")
	}
}

func TestRenderStatusBar(t *testing.T) {
	screen := newTestScreen(t, 40, 7)
	ctx := newLitContext()
	ctx.Lives = engine.Lives{Count: 1, Max: 3}
	ctx.GameOver = true

	r := NewTerminalRenderer(screen, ctx)
	r.RenderFrame(ctx)

	_, viewH := r.ViewSize()
	if viewH != 6 {
		t.Fatalf("Expected view height 6, got %d", viewH)
	}

	var row []rune
	for x := 0; x < 40; x++ {
		ch, _, _, _ := screen.GetContent(x, viewH)
		row = append(row, ch)
	}
	line := string(row)
	for _, want := range []string{"Lives", "♥♡♡", "Turn 0", "GAME OVER"} {
		if !containsString(line, want) {
			t.Errorf("Expected status bar to contain %q, got %q", want, line)
		}
	}
}

func containsString(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

package components

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/vmath"
)

func TestPositionComponent(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"Origin", 0, 0},
		{"Positive values", 10, 20},
		{"Negative values", -5, -10},
		{"Mixed values", -3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := PositionComponent{X: tt.x, Y: tt.y}
			if got := pos.Point(); got != vmath.P(tt.x, tt.y) {
				t.Errorf("Expected point (%d,%d), got %v", tt.x, tt.y, got)
			}

			pos.Set(vmath.P(tt.y, tt.x))
			if pos.X != tt.y || pos.Y != tt.x {
				t.Errorf("Expected (%d,%d) after Set, got (%d,%d)", tt.y, tt.x, pos.X, pos.Y)
			}
		})
	}
}

func TestGlyphComponent(t *testing.T) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	g := GlyphComponent{Rune: '@', Style: style}
	if g.Rune != '@' {
		t.Errorf("Expected Rune to be @, got %c", g.Rune)
	}
	if g.Style != style {
		t.Error("Expected Style to be preserved")
	}
}

func TestProjectileExpired(t *testing.T) {
	p := ProjectileComponent{Dir: vmath.Right, Lifetime: 2}

	// Lifetime 2 survives ticks at 1 and 0, expires on the third
	for i := 0; i < 2; i++ {
		if p.Expired() {
			t.Fatalf("Expired on tick %d, lifetime %d", i, p.Lifetime)
		}
	}
	if !p.Expired() {
		t.Errorf("Expected expiry once lifetime dropped below zero, got %d", p.Lifetime)
	}
}

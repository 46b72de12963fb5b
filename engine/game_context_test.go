package engine

import (
	"testing"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

func TestCameraFollow(t *testing.T) {
	var c Camera
	c.Follow(vmath.P(3, 4), 20, 10)

	if c.Offset != vmath.P(7, 1) {
		t.Fatalf("Expected offset (7,1), got %v", c.Offset)
	}
	if got := c.ToScreen(vmath.P(3, 4)); got != vmath.P(10, 5) {
		t.Errorf("Expected target at view center (10,5), got %v", got)
	}
	if got := c.ToWorld(vmath.P(10, 5)); got != vmath.P(3, 4) {
		t.Errorf("Expected ToWorld to invert ToScreen, got %v", got)
	}
}

func TestLivesLose(t *testing.T) {
	l := Lives{Count: 2, Max: 2}
	if !l.Lose() {
		t.Error("Expected lives remaining after first loss")
	}
	if l.Lose() {
		t.Error("Expected no lives remaining after second loss")
	}
	if l.Lose() || l.Count != 0 {
		t.Errorf("Expected count to stay at 0, got %d", l.Count)
	}
}

func TestContextSetMapResizesIndex(t *testing.T) {
	ctx := newTestContext(4, 4)
	if ctx.Index.Width != 4 || ctx.Index.Height != 4 {
		t.Fatalf("Expected 4x4 index, got %dx%d", ctx.Index.Width, ctx.Index.Height)
	}

	ctx.SetMap(level.NewEmpty(9, 6, true))
	if ctx.Index.Width != 9 || ctx.Index.Height != 6 {
		t.Errorf("Expected 9x6 index after SetMap, got %dx%d", ctx.Index.Width, ctx.Index.Height)
	}
}

func TestNewContextStartingLives(t *testing.T) {
	ctx := newTestContext(4, 4)
	if ctx.Lives.Count != constants.InitialLives || ctx.Lives.Max != constants.InitialLives {
		t.Errorf("Expected %d/%d lives, got %d/%d",
			constants.InitialLives, constants.InitialLives, ctx.Lives.Count, ctx.Lives.Max)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionMove, "Move"},
		{ActionShoot, "Shoot"},
		{ActionWait, "Wait"},
		{Action(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

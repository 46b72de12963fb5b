package systems

import (
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// pushWall applies a push at the wall cell at, refusing to slide a wall onto an occupied cell
func pushWall(ctx *engine.Context, at vmath.Point, dir vmath.Direction) level.PushResult {
	beyond := at.Add(dir.Vector())
	if ctx.Map.IsOccupied(beyond.X, beyond.Y) {
		return level.Blocked
	}
	return ctx.Map.ApplyPush(at.X, at.Y, dir)
}

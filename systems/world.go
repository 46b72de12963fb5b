package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// entityAccess bundles the single-component maps shared by movement systems
type entityAccess struct {
	positions *ecs.Map[components.PositionComponent]
	solids    *ecs.Map[components.SolidComponent]
	monsters  *ecs.Map[components.MonsterComponent]
}

func newEntityAccess(w *ecs.World) entityAccess {
	return entityAccess{
		positions: ecs.NewMap[components.PositionComponent](w),
		solids:    ecs.NewMap[components.SolidComponent](w),
		monsters:  ecs.NewMap[components.MonsterComponent](w),
	}
}

// monsterAt returns the first monster indexed at p
func (a entityAccess) monsterAt(ctx *engine.Context, p vmath.Point) (ecs.Entity, bool) {
	for _, e := range ctx.Index.GetAllAt(p.X, p.Y) {
		if ctx.World.Alive(e) && a.monsters.Has(e) {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// step moves a solid entity, keeping occupancy and index in sync within the tick
func (a entityAccess) step(ctx *engine.Context, e ecs.Entity, pos *components.PositionComponent, to vmath.Point) {
	from := pos.Point()
	if a.solids.Has(e) {
		ctx.Map.Vacate(from.X, from.Y)
		ctx.Map.Occupy(to.X, to.Y)
		ctx.Index.Move(e, from, to)
	}
	pos.Set(to)
}

// despawn removes an entity and clears its occupancy mark
// Must not be called while a query over the world is open
func (a entityAccess) despawn(ctx *engine.Context, e ecs.Entity) {
	if !ctx.World.Alive(e) {
		return
	}
	if a.solids.Has(e) && a.positions.Has(e) {
		pos := a.positions.Get(e)
		ctx.Map.Vacate(pos.X, pos.Y)
		ctx.Index.Remove(e, pos.X, pos.Y)
	}
	ctx.World.RemoveEntity(e)
}

// playerAlive reports whether the context holds a live player entity
func playerAlive(ctx *engine.Context) bool {
	return !ctx.Player.IsZero() && ctx.World.Alive(ctx.Player)
}

// hitCell resolves a push or shot reaching cell at while travelling in dir
// Returns true when the travelling thing must stop
func (a entityAccess) hitCell(ctx *engine.Context, at vmath.Point, dir vmath.Direction) bool {
	if e, ok := a.monsterAt(ctx, at); ok {
		a.despawn(ctx, e)
		ctx.Log.WithField("at", at.String()).Debug("monster destroyed")
		return true
	}
	if ctx.Map.IsPassable(at.X, at.Y) && !ctx.Map.IsOccupied(at.X, at.Y) {
		return false
	}
	if !ctx.Map.InBounds(at.X, at.Y) || ctx.Map.IsOccupied(at.X, at.Y) {
		return true
	}
	ctx.RecordPush(at, dir, pushWall(ctx, at, dir))
	return true
}

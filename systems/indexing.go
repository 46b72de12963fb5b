package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/engine"
)

// MapIndexingSystem rebuilds the occupancy bitmap and entity index from solid entity positions
// Runs first in every tick so later phases never see stale occupancy
type MapIndexingSystem struct {
	solids *ecs.Filter2[components.PositionComponent, components.SolidComponent]
}

// NewMapIndexingSystem creates the occupancy phase system
func NewMapIndexingSystem(ctx *engine.Context) *MapIndexingSystem {
	return &MapIndexingSystem{
		solids: ecs.NewFilter2[components.PositionComponent, components.SolidComponent](ctx.World),
	}
}

// Update clears and re-marks every solid entity's cell
func (s *MapIndexingSystem) Update(ctx *engine.Context) {
	ctx.Map.ClearOccupancy()
	ctx.Index.Clear()

	query := s.solids.Query()
	for query.Next() {
		pos, _ := query.Get()
		if ctx.Map.Occupy(pos.X, pos.Y) {
			ctx.Index.Add(query.Entity(), pos.X, pos.Y)
		}
	}
}

package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/engine"
)

// ProjectileSystem ages and advances projectiles
// A projectile stops at the first monster, wall or solid entity; walls it hits get pushed
type ProjectileSystem struct {
	entityAccess
	filter      *ecs.Filter2[components.PositionComponent, components.ProjectileComponent]
	projectiles *ecs.Map[components.ProjectileComponent]
	pending     []ecs.Entity
}

// NewProjectileSystem creates the projectile movement system
func NewProjectileSystem(ctx *engine.Context) *ProjectileSystem {
	return &ProjectileSystem{
		entityAccess: newEntityAccess(ctx.World),
		filter:       ecs.NewFilter2[components.PositionComponent, components.ProjectileComponent](ctx.World),
		projectiles:  ecs.NewMap[components.ProjectileComponent](ctx.World),
	}
}

// Update moves each projectile one cell
func (s *ProjectileSystem) Update(ctx *engine.Context) {
	// Despawning removes entities, so collect before mutating the world
	s.pending = s.pending[:0]
	query := s.filter.Query()
	for query.Next() {
		s.pending = append(s.pending, query.Entity())
	}

	for _, e := range s.pending {
		if !ctx.World.Alive(e) {
			continue
		}
		proj := s.projectiles.Get(e)

		if proj.Expired() {
			ctx.World.RemoveEntity(e)
			continue
		}

		dir := proj.Dir
		next := s.positions.Get(e).Point().Add(dir.Vector())
		if s.hitCell(ctx, next, dir) {
			ctx.World.RemoveEntity(e)
			continue
		}
		// hitCell may have removed other entities, so the position is fetched again
		s.positions.Get(e).Set(next)
	}
}

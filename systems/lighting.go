package systems

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/light"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// LightingSystem gathers every emitter and recomputes the map's light grid
type LightingSystem struct {
	filter      *ecs.Filter2[components.PositionComponent, components.LightEmitterComponent]
	players     *ecs.Map[components.PlayerComponent]
	headings    *ecs.Map[components.HeadingComponent]
	projectiles *ecs.Map[components.ProjectileComponent]
	sources     []light.Source
	log         *logrus.Entry
}

// NewLightingSystem creates the lighting phase system
func NewLightingSystem(ctx *engine.Context) *LightingSystem {
	return &LightingSystem{
		filter:      ecs.NewFilter2[components.PositionComponent, components.LightEmitterComponent](ctx.World),
		players:     ecs.NewMap[components.PlayerComponent](ctx.World),
		headings:    ecs.NewMap[components.HeadingComponent](ctx.World),
		projectiles: ecs.NewMap[components.ProjectileComponent](ctx.World),
		log:         ctx.Log.WithField("system", "lighting"),
	}
}

// Update darkens the map and casts all sources with the context's light options
func (s *LightingSystem) Update(ctx *engine.Context) {
	s.sources = s.sources[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, emitter := query.Get()
		s.sources = append(s.sources, light.Source{
			Pos:    pos.Point(),
			Radius: emitter.Radius,
			Kind:   emitter.Kind,
			Facing: s.facing(query.Entity()),
			Arc:    emitter.Arc,
		})
	}

	light.Compute(ctx.Map, s.sources, ctx.Light)

	s.log.WithFields(logrus.Fields{
		"sources": len(s.sources),
		"occlude": ctx.Light.Occlude,
	}).Trace("light computed")
}

// Sources returns the sources of the last pass
func (s *LightingSystem) Sources() []light.Source {
	return s.sources
}

func (s *LightingSystem) facing(e ecs.Entity) vmath.Direction {
	switch {
	case s.players.Has(e):
		return s.players.Get(e).Facing
	case s.headings.Has(e):
		return s.headings.Get(e).Dir
	case s.projectiles.Has(e):
		return s.projectiles.Get(e).Dir
	default:
		return vmath.Left
	}
}

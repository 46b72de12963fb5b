package systems

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// PlayerSystem consumes the pending intent: move, shoot or wait
type PlayerSystem struct {
	entityAccess
	players     *ecs.Map2[components.PositionComponent, components.PlayerComponent]
	projectiles *ecs.Map4[components.PositionComponent, components.ProjectileComponent, components.GlyphComponent, components.LightEmitterComponent]
	log         *logrus.Entry
}

// NewPlayerSystem creates the player movement system
func NewPlayerSystem(ctx *engine.Context) *PlayerSystem {
	return &PlayerSystem{
		entityAccess: newEntityAccess(ctx.World),
		players:      ecs.NewMap2[components.PositionComponent, components.PlayerComponent](ctx.World),
		projectiles:  ecs.NewMap4[components.PositionComponent, components.ProjectileComponent, components.GlyphComponent, components.LightEmitterComponent](ctx.World),
		log:          ctx.Log.WithField("system", "player"),
	}
}

// Update applies the intent and recenters the camera
func (s *PlayerSystem) Update(ctx *engine.Context) {
	if ctx.GameOver || !playerAlive(ctx) {
		return
	}

	pos, player := s.players.Get(ctx.Player)
	intent := ctx.Intent

	switch intent.Action {
	case engine.ActionMove:
		player.Facing = intent.Dir
		s.move(ctx, pos, intent.Dir)
	case engine.ActionShoot:
		player.Facing = intent.Dir
		s.shoot(ctx, pos.Point(), intent.Dir)
	}

	s.Follow(ctx)
}

// Follow recenters the camera on the player for the current viewport
func (s *PlayerSystem) Follow(ctx *engine.Context) {
	if !playerAlive(ctx) {
		return
	}
	ctx.Camera.Follow(s.positions.Get(ctx.Player).Point(), ctx.ViewWidth, ctx.ViewHeight)
}

// move steps onto floor, pushes walls and steps into the vacated cell when the push succeeded
func (s *PlayerSystem) move(ctx *engine.Context, pos *components.PositionComponent, dir vmath.Direction) {
	from := pos.Point()
	to := from.Add(dir.Vector())
	to.X = vmath.Clamp(to.X, 0, ctx.Map.Width()-1)
	to.Y = vmath.Clamp(to.Y, 0, ctx.Map.Height()-1)
	if to == from || ctx.Map.IsOccupied(to.X, to.Y) {
		return
	}

	switch ctx.Map.TileOr(to.X, to.Y, level.Wall) {
	case level.Floor:
		s.step(ctx, ctx.Player, pos, to)
	case level.Wall:
		result := pushWall(ctx, to, dir)
		ctx.RecordPush(to, dir, result)
		s.log.WithFields(logrus.Fields{
			"at":     to.String(),
			"dir":    dir.String(),
			"result": result.String(),
		}).Debug("push")
		if result.Moved() {
			s.step(ctx, ctx.Player, pos, to)
		}
	}
}

// shoot resolves the cell ahead immediately and spawns a projectile there when it is open
func (s *PlayerSystem) shoot(ctx *engine.Context, from vmath.Point, dir vmath.Direction) {
	ahead := from.Add(dir.Vector())
	if s.hitCell(ctx, ahead, dir) {
		return
	}

	s.projectiles.NewEntity(
		&components.PositionComponent{X: ahead.X, Y: ahead.Y},
		&components.ProjectileComponent{Dir: dir, Lifetime: constants.ProjectileLifetime},
		&components.GlyphComponent{Rune: constants.ProjectileChar, Style: ProjectileStyle},
		&components.LightEmitterComponent{Radius: constants.ProjectileLightRadius},
	)
	s.log.WithField("at", ahead.String()).Debug("shot fired")
}

package systems

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// MonsterSystem walks monsters along their heading
// Blocked monsters turn to the next direction in ring order; there is no pathfinding
// A monster stepping onto a projectile's cell is destroyed together with the projectile
type MonsterSystem struct {
	entityAccess
	filter   *ecs.Filter3[components.PositionComponent, components.HeadingComponent, components.MonsterComponent]
	shots    *ecs.Filter2[components.PositionComponent, components.ProjectileComponent]
	headings *ecs.Map[components.HeadingComponent]
	log      *logrus.Entry

	pending []ecs.Entity
	shotAt  map[vmath.Point]ecs.Entity
}

// NewMonsterSystem creates the monster movement system
func NewMonsterSystem(ctx *engine.Context) *MonsterSystem {
	return &MonsterSystem{
		entityAccess: newEntityAccess(ctx.World),
		filter:       ecs.NewFilter3[components.PositionComponent, components.HeadingComponent, components.MonsterComponent](ctx.World),
		shots:        ecs.NewFilter2[components.PositionComponent, components.ProjectileComponent](ctx.World),
		headings:     ecs.NewMap[components.HeadingComponent](ctx.World),
		log:          ctx.Log.WithField("system", "monster"),
		shotAt:       make(map[vmath.Point]ecs.Entity),
	}
}

// Update advances every monster one step or turns it
func (s *MonsterSystem) Update(ctx *engine.Context) {
	if ctx.GameOver {
		return
	}

	hasPlayer := playerAlive(ctx)

	// Hits remove entities, so collect before mutating the world
	s.pending = s.pending[:0]
	query := s.filter.Query()
	for query.Next() {
		s.pending = append(s.pending, query.Entity())
	}
	clear(s.shotAt)
	shots := s.shots.Query()
	for shots.Next() {
		pos, _ := shots.Get()
		s.shotAt[pos.Point()] = shots.Entity()
	}

	for _, e := range s.pending {
		if !ctx.World.Alive(e) {
			continue
		}
		pos := s.positions.Get(e)
		heading := s.headings.Get(e)
		to := pos.Point().Add(heading.Dir.Vector())

		if hasPlayer && to == s.positions.Get(ctx.Player).Point() {
			s.monsters.Get(e).Bumps++
			heading.Dir = heading.Dir.Next()
			s.bumpPlayer(ctx)
			continue
		}

		if shot, ok := s.shotAt[to]; ok && ctx.World.Alive(shot) {
			delete(s.shotAt, to)
			ctx.World.RemoveEntity(shot)
			s.despawn(ctx, e)
			s.log.WithField("at", to.String()).Debug("monster walked into shot")
			continue
		}

		if ctx.Map.IsFreeAt(to) {
			s.step(ctx, e, pos, to)
			continue
		}
		heading.Dir = heading.Dir.Next()
	}
}

// bumpPlayer costs one life and ends the game when none remain
func (s *MonsterSystem) bumpPlayer(ctx *engine.Context) {
	if ctx.GameOver {
		return
	}
	remaining := ctx.Lives.Lose()
	s.log.WithFields(logrus.Fields{
		"lives": ctx.Lives.Count,
		"turn":  ctx.Turn,
	}).Info("player hit")
	if !remaining {
		ctx.GameOver = true
		s.log.WithField("turn", ctx.Turn).Info("game over")
	}
}

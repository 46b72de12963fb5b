package systems

import (
	"errors"

	"github.com/mlange-42/ark/ecs"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/light"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// ErrNoFloor is returned when a map has no floor cell to place the player on
var ErrNoFloor = errors.New("map has no floor")

// spawnAttemptsPerMonster bounds the random lattice search for each monster
const spawnAttemptsPerMonster = 64

// monsterConeWidth is the width of a monster's forward light
const monsterConeWidth = vmath.HalfPi

// SpawnSystem places the player and monsters on a fresh map
type SpawnSystem struct {
	players  *ecs.Map5[components.PositionComponent, components.PlayerComponent, components.SolidComponent, components.GlyphComponent, components.LightEmitterComponent]
	monsters *ecs.Map5[components.PositionComponent, components.HeadingComponent, components.MonsterComponent, components.SolidComponent, components.GlyphComponent]
	emitters *ecs.Map[components.LightEmitterComponent]
	placed   *ecs.Filter1[components.PositionComponent]
	log      *logrus.Entry

	PlayerLightRadius float64
}

// NewSpawnSystem creates the spawner
func NewSpawnSystem(ctx *engine.Context) *SpawnSystem {
	return &SpawnSystem{
		players:  ecs.NewMap5[components.PositionComponent, components.PlayerComponent, components.SolidComponent, components.GlyphComponent, components.LightEmitterComponent](ctx.World),
		monsters: ecs.NewMap5[components.PositionComponent, components.HeadingComponent, components.MonsterComponent, components.SolidComponent, components.GlyphComponent](ctx.World),
		emitters: ecs.NewMap[components.LightEmitterComponent](ctx.World),
		placed:   ecs.NewFilter1[components.PositionComponent](ctx.World),
		log:      ctx.Log.WithField("system", "spawn"),

		PlayerLightRadius: constants.PlayerLightRadius,
	}
}

// SpawnPlayer places the player on the first floor cell in row-major order and records it in ctx.Player
func (s *SpawnSystem) SpawnPlayer(ctx *engine.Context) (ecs.Entity, error) {
	start, ok := firstFloor(ctx)
	if !ok {
		return ecs.Entity{}, ErrNoFloor
	}

	e := s.players.NewEntity(
		&components.PositionComponent{X: start.X, Y: start.Y},
		&components.PlayerComponent{Facing: vmath.Right},
		&components.SolidComponent{},
		&components.GlyphComponent{Rune: constants.PlayerChar, Style: PlayerStyle},
		&components.LightEmitterComponent{Radius: s.PlayerLightRadius, Kind: light.Radial},
	)
	ctx.Player = e
	ctx.Map.Occupy(start.X, start.Y)
	ctx.Index.Add(e, start.X, start.Y)
	ctx.Camera.Follow(start, ctx.ViewWidth, ctx.ViewHeight)

	s.log.WithField("at", start.String()).Info("player spawned")
	return e, nil
}

// SpawnMonsters places up to n monsters on free odd-lattice floor cells with random headings
// Returns the number actually placed
func (s *SpawnSystem) SpawnMonsters(ctx *engine.Context, n int) int {
	w, h := ctx.Map.Width(), ctx.Map.Height()
	if w < 3 || h < 3 {
		return 0
	}

	placed := 0
	for attempts := n * spawnAttemptsPerMonster; placed < n && attempts > 0; attempts-- {
		p := vmath.P(ctx.Rng.Intn((w-1)/2)*2+1, ctx.Rng.Intn((h-1)/2)*2+1)
		if !ctx.Map.IsFreeAt(p) {
			continue
		}

		e := s.monsters.NewEntity(
			&components.PositionComponent{X: p.X, Y: p.Y},
			&components.HeadingComponent{Dir: vmath.RandomDirection(ctx.Rng)},
			&components.MonsterComponent{},
			&components.SolidComponent{},
			&components.GlyphComponent{Rune: constants.MonsterChar, Style: MonsterStyle},
		)
		s.emitters.Add(e, &components.LightEmitterComponent{
			Radius: constants.MonsterLightRadius,
			Kind:   light.Cone,
			Arc:    monsterConeWidth,
		})
		ctx.Map.Occupy(p.X, p.Y)
		ctx.Index.Add(e, p.X, p.Y)
		placed++
	}

	s.log.WithFields(logrus.Fields{
		"requested": n,
		"placed":    placed,
	}).Info("monsters spawned")
	return placed
}

// Clear removes every placed entity and resets occupancy and the index
func (s *SpawnSystem) Clear(ctx *engine.Context) int {
	var doomed []ecs.Entity
	query := s.placed.Query()
	for query.Next() {
		doomed = append(doomed, query.Entity())
	}
	for _, e := range doomed {
		ctx.World.RemoveEntity(e)
	}

	ctx.Map.ClearOccupancy()
	ctx.Index.Clear()
	ctx.Player = ecs.Entity{}
	return len(doomed)
}

func firstFloor(ctx *engine.Context) (vmath.Point, bool) {
	var found vmath.Point
	ok := false
	ctx.Map.Each(func(x, y int, t level.Tile, _ float64) bool {
		if t == level.Floor && !ctx.Map.IsOccupied(x, y) {
			found, ok = vmath.P(x, y), true
			return false
		}
		return true
	})
	return found, ok
}

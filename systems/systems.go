package systems

import (
	"fmt"

	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/level"
)

// Set holds every game system so callers can reach the spawner after registration
type Set struct {
	Indexing    *MapIndexingSystem
	Player      *PlayerSystem
	Projectiles *ProjectileSystem
	Monsters    *MonsterSystem
	Lighting    *LightingSystem
	Spawn       *SpawnSystem
}

// NewSet constructs all systems against ctx
func NewSet(ctx *engine.Context) *Set {
	return &Set{
		Indexing:    NewMapIndexingSystem(ctx),
		Player:      NewPlayerSystem(ctx),
		Projectiles: NewProjectileSystem(ctx),
		Monsters:    NewMonsterSystem(ctx),
		Lighting:    NewLightingSystem(ctx),
		Spawn:       NewSpawnSystem(ctx),
	}
}

// Register binds the systems to their phases
// Within movement the player acts first, then projectiles (including ones fired this tick), then monsters
func (s *Set) Register(sched *engine.Scheduler) error {
	bindings := []struct {
		phase engine.Phase
		sys   engine.System
	}{
		{engine.PhaseOccupancy, s.Indexing},
		{engine.PhaseMovement, s.Player},
		{engine.PhaseMovement, s.Projectiles},
		{engine.PhaseMovement, s.Monsters},
		{engine.PhaseLighting, s.Lighting},
	}
	for _, b := range bindings {
		if err := sched.Register(b.phase, b.sys); err != nil {
			return fmt.Errorf("register systems: %w", err)
		}
	}
	return nil
}

// NewLevel replaces the map, removes all entities and spawns a fresh player and monsters
// Lives refill and the game-over flag resets
func (s *Set) NewLevel(ctx *engine.Context, m *level.Map, monsters int) error {
	s.Spawn.Clear(ctx)
	ctx.SetMap(m)
	ctx.Lives.Count = ctx.Lives.Max
	ctx.GameOver = false

	if _, err := s.Spawn.SpawnPlayer(ctx); err != nil {
		return fmt.Errorf("new level: %w", err)
	}
	s.Spawn.SpawnMonsters(ctx, monsters)
	s.Lighting.Update(ctx)
	return nil
}

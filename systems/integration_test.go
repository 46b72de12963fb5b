package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/maze"
	"github.com/lixenwraith/vi-rogue/vmath"
)

func TestFullTickInvariants(t *testing.T) {
	cfg := maze.DefaultConfig(31, 41)
	cfg.Seed = 7
	m, err := maze.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	ctx := engine.NewContext(m, rng, nil)
	ctx.ViewWidth, ctx.ViewHeight = 40, 20

	set := NewSet(ctx)
	if _, err := set.Spawn.SpawnPlayer(ctx); err != nil {
		t.Fatalf("SpawnPlayer failed: %v", err)
	}
	set.Spawn.SpawnMonsters(ctx, 6)

	sched := engine.NewScheduler(ctx)
	if err := set.Register(sched); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	actions := []engine.Action{engine.ActionMove, engine.ActionMove, engine.ActionShoot, engine.ActionWait}
	pushes := 0
	for i := 0; i < 300 && !ctx.GameOver; i++ {
		sched.Submit(engine.Intent{
			Action: actions[rng.Intn(len(actions))],
			Dir:    vmath.RandomDirection(rng),
		})
		sched.Tick()
		pushes += len(ctx.PushEvents)

		assertSolidsDistinct(t, ctx)
		assertBorder(t, ctx.Map)
	}

	if ctx.Lives.Count < 0 || ctx.Lives.Count > ctx.Lives.Max {
		t.Errorf("Expected lives within 0..%d, got %d", ctx.Lives.Max, ctx.Lives.Count)
	}
	t.Logf("✓ %d ticks, %d pushes, %d lives left", sched.GetTickCount(), pushes, ctx.Lives.Count)
}

// assertSolidsDistinct checks that no two solid entities share a cell and all stand on floor
func assertSolidsDistinct(t *testing.T, ctx *engine.Context) {
	t.Helper()
	seen := make(map[vmath.Point]bool)
	query := ecs.NewFilter2[components.PositionComponent, components.SolidComponent](ctx.World).Query()
	for query.Next() {
		pos, _ := query.Get()
		p := pos.Point()
		if seen[p] {
			t.Errorf("Tick %d: two solids at %v", ctx.Turn, p)
		}
		seen[p] = true
		if ctx.Map.TileOr(p.X, p.Y, level.Wall) != level.Floor {
			t.Errorf("Tick %d: solid on non-floor at %v", ctx.Turn, p)
		}
	}
}

// assertBorder checks that pushes never opened the outer ring
func assertBorder(t *testing.T, m *level.Map) {
	t.Helper()
	w, h := m.Width(), m.Height()
	for x := 0; x < w; x++ {
		for _, y := range []int{0, h - 1} {
			if m.TileOr(x, y, level.Wall) != level.Wall {
				t.Fatalf("Border opened at (%d,%d)", x, y)
			}
		}
	}
	for y := 0; y < h; y++ {
		for _, x := range []int{0, w - 1} {
			if m.TileOr(x, y, level.Wall) != level.Wall {
				t.Fatalf("Border opened at (%d,%d)", x, y)
			}
		}
	}
}

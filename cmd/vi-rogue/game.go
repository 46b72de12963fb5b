package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/logger"
	"github.com/lixenwraith/vi-rogue/maze"
	"github.com/lixenwraith/vi-rogue/render"
	"github.com/lixenwraith/vi-rogue/systems"
)

// game wires the engine to a screen and turns input into ticks
type game struct {
	cfg      config.Config
	ctx      *engine.Context
	sched    *engine.Scheduler
	set      *systems.Set
	renderer *render.TerminalRenderer
	sounds   *audio.SoundManager
	input    *input.Machine
	log      *logrus.Entry
}

// newGame generates the first level and registers every phase system
func newGame(cfg config.Config, screen tcell.Screen, log *logrus.Logger) (*game, error) {
	seed := cfg.Map.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m, err := generateMap(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("generate map: %w", err)
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}

	ctx := engine.NewContext(m, rng, logger.Component(log, "engine"))
	ctx.Light = cfg.LightOptions()
	ctx.Lives = engine.Lives{Count: cfg.Game.Lives, Max: cfg.Game.Lives}

	g := &game{
		cfg:      cfg,
		ctx:      ctx,
		renderer: render.NewTerminalRenderer(screen, ctx),
		sounds:   audio.NewSoundManager(cfg.AudioConfig(), logrus.NewEntry(log)),
		input:    input.NewMachine(keys),
		log:      logger.Component(log, "game"),
	}
	ctx.ViewWidth, ctx.ViewHeight = g.renderer.ViewSize()

	g.set = systems.NewSet(ctx)
	g.set.Spawn.PlayerLightRadius = cfg.Light.PlayerRadius
	if err := g.set.NewLevel(ctx, m, cfg.Game.Monsters); err != nil {
		return nil, err
	}

	g.sched = engine.NewScheduler(ctx)
	if err := g.set.Register(g.sched); err != nil {
		return nil, err
	}
	if err := g.sched.Register(engine.PhaseRender, g.renderer); err != nil {
		return nil, err
	}
	if err := g.sched.Register(engine.PhaseRender, g.sounds); err != nil {
		return nil, err
	}

	g.log.WithFields(logrus.Fields{
		"seed":      seed,
		"generator": cfg.Map.Generator,
		"width":     m.Width(),
		"height":    m.Height(),
		"floor":     m.FloorCount(),
		"coverage":  maze.Coverage(m),
	}).Info("game ready")
	return g, nil
}

// generateMap builds a level with the configured generator
func generateMap(cfg config.Config, rng *rand.Rand) (*level.Map, error) {
	if cfg.Map.Generator == config.GeneratorScatter {
		return maze.Scatter(cfg.ScatterConfig(), rng)
	}
	return maze.Carve(cfg.MazeConfig(), rng)
}

// run polls screen events until quit or screen closure
func (g *game) run(screen tcell.Screen) {
	if err := g.sounds.Initialize(); err != nil {
		g.log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer g.sounds.Cleanup()

	g.draw()

	if g.cfg.Game.Realtime {
		g.sched.Start(g.cfg.Game.TickInterval)
		defer g.sched.Stop()
	}

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}

		intent := g.input.Process(ev)
		if intent == nil {
			continue
		}
		if !g.handle(*intent) {
			return
		}
	}
}

// handle applies one parsed intent and reports whether the game continues
func (g *game) handle(intent input.Intent) bool {
	switch intent.Type {
	case input.IntentQuit:
		g.log.Info("quit requested")
		return false

	case input.IntentPause:
		g.ctx.IsPaused.Store(!g.ctx.IsPaused.Load())
		g.draw()

	case input.IntentMute:
		g.ctx.IsMuted.Store(!g.ctx.IsMuted.Load())

	case input.IntentRegenerate:
		g.regenerate()

	case input.IntentResize:
		g.sched.Do(func(ctx *engine.Context) {
			ctx.ViewWidth, ctx.ViewHeight = g.renderer.ViewSize()
			g.set.Player.Follow(ctx)
			g.renderer.RenderFrame(ctx)
		})

	case input.IntentMove, input.IntentShoot, input.IntentWait:
		g.turn(intent)
	}
	return true
}

// turn submits the intent; in turn-based mode it also ticks once per count
func (g *game) turn(intent input.Intent) {
	if g.ctx.IsPaused.Load() {
		return
	}

	next := engine.Intent{Action: engine.ActionWait, Dir: intent.Dir}
	switch intent.Type {
	case input.IntentMove:
		next.Action = engine.ActionMove
	case input.IntentShoot:
		next.Action = engine.ActionShoot
	}

	if g.cfg.Game.Realtime {
		g.sched.Submit(next)
		return
	}

	for i := 0; i < max(intent.Count, 1); i++ {
		if g.isOver() {
			return
		}
		g.sched.Submit(next)
		g.sched.Tick()
	}
}

// regenerate swaps in a fresh level from the shared RNG
func (g *game) regenerate() {
	g.sched.Do(func(ctx *engine.Context) {
		m, err := generateMap(g.cfg, ctx.Rng)
		if err != nil {
			g.log.WithError(err).Error("regenerate failed")
			return
		}
		if err := g.set.NewLevel(ctx, m, g.cfg.Game.Monsters); err != nil {
			g.log.WithError(err).Error("regenerate failed")
			return
		}
		g.log.WithField("floor", m.FloorCount()).Info("level regenerated")
		g.renderer.RenderFrame(ctx)
	})
}

func (g *game) draw() {
	g.sched.Do(g.renderer.RenderFrame)
}

func (g *game) isOver() bool {
	over := false
	g.sched.Do(func(ctx *engine.Context) { over = ctx.GameOver })
	return over
}

package engine

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/core"
)

// ErrUnknownPhase is returned when registering a system outside the fixed phase set
var ErrUnknownPhase = errors.New("unknown phase")

// Phase is one step of a tick; phases always run in declaration order
type Phase int

const (
	PhaseOccupancy Phase = iota // rebuild occupancy from entity positions
	PhaseMovement               // player, projectiles, monsters
	PhaseLighting               // darken then ray-cast every source
	PhaseRender                 // read-only consumers: renderer, audio

	phaseCount
)

// String returns phase name for debugging
func (p Phase) String() string {
	switch p {
	case PhaseOccupancy:
		return "Occupancy"
	case PhaseMovement:
		return "Movement"
	case PhaseLighting:
		return "Lighting"
	case PhaseRender:
		return "Render"
	default:
		return "Unknown"
	}
}

// System is a unit of per-tick work bound to a single phase
type System interface {
	Update(ctx *Context)
}

// SystemFunc adapts a plain function to System
type SystemFunc func(ctx *Context)

func (f SystemFunc) Update(ctx *Context) { f(ctx) }

// Scheduler runs registered systems phase by phase
// A tick holds the mutex end to end, so two ticks never interleave and no phase observes a partial update of an earlier one
type Scheduler struct {
	ctx    *Context
	phases [phaseCount][]System

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
	mu        sync.Mutex

	// Control channels; stopChan is recreated per run, runMu serializes Start and Stop
	stopChan chan struct{}
	runMu    sync.Mutex
	wg       sync.WaitGroup
	running  atomic.Bool

	tickInterval time.Duration
}

// NewScheduler creates a scheduler bound to ctx
func NewScheduler(ctx *Context) *Scheduler {
	return &Scheduler{
		ctx: ctx,
	}
}

// Register appends sys to phase; systems within a phase run in registration order
func (s *Scheduler) Register(phase Phase, sys System) error {
	if phase < 0 || phase >= phaseCount {
		return fmt.Errorf("register %d: %w", int(phase), ErrUnknownPhase)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases[phase] = append(s.phases[phase], sys)
	return nil
}

// Submit queues the player intent for the next tick
func (s *Scheduler) Submit(intent Intent) {
	s.mu.Lock()
	s.ctx.Intent = intent
	s.mu.Unlock()
}

// Do runs fn under the tick mutex, for out-of-band changes such as level swaps and redraws
func (s *Scheduler) Do(fn func(ctx *Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ctx)
}

// Tick runs one full occupancy → movement → lighting → render cycle and returns the new tick count
func (s *Scheduler) Tick() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx.PushEvents = s.ctx.PushEvents[:0]
	for p := Phase(0); p < phaseCount; p++ {
		for _, sys := range s.phases[p] {
			sys.Update(s.ctx)
		}
	}
	s.ctx.Intent = Intent{}

	n := s.tickCount.Add(1)
	s.ctx.Turn = n
	if s.ctx.Log != nil {
		s.ctx.Log.WithFields(logrus.Fields{
			"tick":   n,
			"pushes": len(s.ctx.PushEvents),
			"lives":  s.ctx.Lives.Count,
		}).Debug("tick complete")
	}
	return n
}

// Start begins auto-advancing at interval; ticks submitted in between are serialized by the tick mutex
func (s *Scheduler) Start(interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running.CompareAndSwap(false, true) {
		s.tickInterval = interval
		stop := make(chan struct{})
		s.stopChan = stop
		s.wg.Add(1)
		core.Go(func() { s.loop(stop) })
	}
}

// Stop halts the auto-advance loop, safe to call more than once or before Start
func (s *Scheduler) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running.CompareAndSwap(true, false) {
		close(s.stopChan)
		s.wg.Wait()
	}
}

func (s *Scheduler) loop(stop <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if s.ctx.IsPaused.Load() {
				continue
			}
			s.Tick()
		}
	}
}

// GetTickCount returns the current tick count
func (s *Scheduler) GetTickCount() uint64 {
	return s.tickCount.Load()
}

// GetTickInterval returns the auto-advance interval, zero when never started
func (s *Scheduler) GetTickInterval() time.Duration {
	return s.tickInterval
}

// IsRunning reports whether the auto-advance loop is active
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

package engine

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// phaseRecorder appends its label to a shared log on every update
type phaseRecorder struct {
	label string
	mu    *sync.Mutex
	log   *[]string
}

func (r phaseRecorder) Update(ctx *Context) {
	r.mu.Lock()
	*r.log = append(*r.log, r.label)
	r.mu.Unlock()
}

func newTestContext(w, h int) *Context {
	return NewContext(level.NewEmpty(w, h, true), rand.New(rand.NewSource(1)), nil)
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseOccupancy, "Occupancy"},
		{PhaseMovement, "Movement"},
		{PhaseLighting, "Lighting"},
		{PhaseRender, "Render"},
		{Phase(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.expected {
				t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
			}
		})
	}
}

func TestSchedulerPhaseOrder(t *testing.T) {
	ctx := newTestContext(8, 8)
	s := NewScheduler(ctx)

	var mu sync.Mutex
	var log []string
	rec := func(label string) System { return phaseRecorder{label: label, mu: &mu, log: &log} }

	// Registered out of order on purpose
	mustRegister(t, s, PhaseRender, rec("render"))
	mustRegister(t, s, PhaseLighting, rec("lighting"))
	mustRegister(t, s, PhaseMovement, rec("player"))
	mustRegister(t, s, PhaseMovement, rec("monsters"))
	mustRegister(t, s, PhaseOccupancy, rec("occupancy"))

	if n := s.Tick(); n != 1 {
		t.Fatalf("Expected tick 1, got %d", n)
	}

	expected := []string{"occupancy", "player", "monsters", "lighting", "render"}
	if len(log) != len(expected) {
		t.Fatalf("Expected %d updates, got %d: %v", len(expected), len(log), log)
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("Update %d: expected %s, got %s", i, expected[i], log[i])
		}
	}
	if ctx.Turn != 1 {
		t.Errorf("Expected ctx.Turn 1, got %d", ctx.Turn)
	}
}

func mustRegister(t *testing.T, s *Scheduler, p Phase, sys System) {
	t.Helper()
	if err := s.Register(p, sys); err != nil {
		t.Fatalf("Register(%s) failed: %v", p, err)
	}
}

func TestSchedulerRegisterUnknownPhase(t *testing.T) {
	s := NewScheduler(newTestContext(4, 4))
	for _, p := range []Phase{-1, phaseCount, 42} {
		err := s.Register(p, SystemFunc(func(*Context) {}))
		if !errors.Is(err, ErrUnknownPhase) {
			t.Errorf("Register(%d): expected ErrUnknownPhase, got %v", int(p), err)
		}
	}
}

func TestSchedulerIntentLifecycle(t *testing.T) {
	ctx := newTestContext(8, 8)
	s := NewScheduler(ctx)

	var seen Intent
	mustRegister(t, s, PhaseMovement, SystemFunc(func(c *Context) {
		seen = c.Intent
		c.RecordPush(vmath.P(1, 1), vmath.Right, level.Pushed)
	}))

	var pushesAtRender int
	mustRegister(t, s, PhaseRender, SystemFunc(func(c *Context) {
		pushesAtRender = len(c.PushEvents)
	}))

	s.Submit(Intent{Action: ActionMove, Dir: vmath.Up})
	s.Tick()

	if seen.Action != ActionMove || seen.Dir != vmath.Up {
		t.Errorf("Expected Move/Up intent in movement phase, got %s/%s", seen.Action, seen.Dir)
	}
	if pushesAtRender != 1 {
		t.Errorf("Expected render phase to see 1 push, got %d", pushesAtRender)
	}
	if ctx.Intent.Action != ActionNone {
		t.Errorf("Expected intent cleared after tick, got %s", ctx.Intent.Action)
	}

	// Push events are per tick, not cumulative
	s.Tick()
	if pushesAtRender != 1 {
		t.Errorf("Expected 1 push on second tick, got %d", pushesAtRender)
	}
	if seen.Action != ActionNone {
		t.Errorf("Expected no intent on second tick, got %s", seen.Action)
	}
}

func TestSchedulerTicksDoNotInterleave(t *testing.T) {
	ctx := newTestContext(8, 8)
	s := NewScheduler(ctx)

	var mu sync.Mutex
	var log []string
	mustRegister(t, s, PhaseOccupancy, phaseRecorder{label: "begin", mu: &mu, log: &log})
	mustRegister(t, s, PhaseRender, phaseRecorder{label: "end", mu: &mu, log: &log})

	const ticks = 50
	var wg sync.WaitGroup
	for i := 0; i < ticks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Tick()
		}()
	}
	wg.Wait()

	if got := s.GetTickCount(); got != ticks {
		t.Fatalf("Expected %d ticks, got %d", ticks, got)
	}
	for i := 0; i < len(log); i += 2 {
		if log[i] != "begin" || log[i+1] != "end" {
			t.Fatalf("Interleaved ticks at %d: %v", i, log[i:i+2])
		}
	}
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler(newTestContext(4, 4))

	s.Start(5 * time.Millisecond)
	if !s.IsRunning() {
		t.Fatal("Expected scheduler running after Start")
	}
	if s.GetTickInterval() != 5*time.Millisecond {
		t.Errorf("Expected interval 5ms, got %v", s.GetTickInterval())
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.GetTickCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if s.GetTickCount() < 2 {
		t.Fatalf("Expected at least 2 ticks, got %d", s.GetTickCount())
	}

	s.Stop()
	if s.IsRunning() {
		t.Fatal("Expected scheduler stopped")
	}

	after := s.GetTickCount()
	time.Sleep(20 * time.Millisecond)
	if s.GetTickCount() != after {
		t.Errorf("Expected no ticks after Stop, got %d more", s.GetTickCount()-after)
	}
	t.Logf("✓ Auto-advance ran %d ticks", after)
}

func TestSchedulerPausedLoopSkipsTicks(t *testing.T) {
	ctx := newTestContext(4, 4)
	ctx.IsPaused.Store(true)
	s := NewScheduler(ctx)

	s.Start(time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	if s.GetTickCount() != 0 {
		t.Errorf("Expected no ticks while paused, got %d", s.GetTickCount())
	}

	// Manual ticks are not gated
	s.Tick()
	if s.GetTickCount() != 1 {
		t.Errorf("Expected manual tick to run, got %d", s.GetTickCount())
	}
}

func TestSchedulerStopIdempotent(t *testing.T) {
	s := NewScheduler(newTestContext(4, 4))
	s.Start(time.Millisecond)

	s.Stop()
	s.Stop()
	s.Stop()
	t.Logf("✓ Multiple Stop() calls succeeded without panic")
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := NewScheduler(newTestContext(4, 4))
	s.Stop()
	if s.IsRunning() {
		t.Error("Expected scheduler not running")
	}
}

func TestSchedulerRestartAfterStop(t *testing.T) {
	s := NewScheduler(newTestContext(4, 4))

	// Stop before any Start must not prevent a later run from being stopped
	s.Stop()
	for run := 1; run <= 2; run++ {
		s.Start(time.Millisecond)
		if !s.IsRunning() {
			t.Fatalf("Expected scheduler running on run %d", run)
		}
		s.Stop()
		if s.IsRunning() {
			t.Fatalf("Expected scheduler stopped on run %d", run)
		}

		after := s.GetTickCount()
		time.Sleep(15 * time.Millisecond)
		if s.GetTickCount() != after {
			t.Errorf("Expected loop ended on run %d, got %d more ticks", run, s.GetTickCount()-after)
		}
	}
	t.Logf("✓ Scheduler restarts and stops cleanly")
}

func TestSchedulerStartIgnoresNonPositiveInterval(t *testing.T) {
	s := NewScheduler(newTestContext(4, 4))
	s.Start(0)
	if s.IsRunning() {
		t.Error("Expected Start(0) to be a no-op")
	}
}

func TestSchedulerDo(t *testing.T) {
	ctx := newTestContext(5, 5)
	s := NewScheduler(ctx)

	s.Do(func(c *Context) {
		c.SetMap(level.NewEmpty(8, 6, true))
	})
	if ctx.Map.Width() != 8 || ctx.Index.Width != 8 || ctx.Index.Height != 6 {
		t.Errorf("Expected map and index resized to 8x6, got map %d index %dx%d",
			ctx.Map.Width(), ctx.Index.Width, ctx.Index.Height)
	}
}

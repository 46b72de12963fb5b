package engine

import (
	"math/rand"
	"sync/atomic"

	"github.com/mlange-42/ark/ecs"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/light"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// Action is the kind of player intent for a tick
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionShoot
	ActionWait
)

// String returns action name for debugging
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionShoot:
		return "Shoot"
	case ActionWait:
		return "Wait"
	default:
		return "Unknown"
	}
}

// Intent is the pending player command, consumed by the movement phase
type Intent struct {
	Action Action
	Dir    vmath.Direction
}

// PushEvent records one ApplyPush outcome during the movement phase
type PushEvent struct {
	At     vmath.Point // pushed wall cell
	Dir    vmath.Direction
	Result level.PushResult
}

// Lives is the player life pool
type Lives struct {
	Count int
	Max   int
}

// Lose decrements the pool and reports whether any lives remain
func (l *Lives) Lose() bool {
	if l.Count > 0 {
		l.Count--
	}
	return l.Count > 0
}

// Context is the explicit shared state handed to every phase
type Context struct {
	// ===== Immutable After Init =====
	// Set during NewContext; Map is swapped only through SetMap under the tick mutex.

	Map   *level.Map               // Tiles, light and occupancy; single writer per phase
	World *ecs.World               // Entity storage
	Index *SpatialGrid[ecs.Entity] // Entity lookup by cell; rebuilt in occupancy phase
	Rng   *rand.Rand               // Shared RNG; not safe outside the tick
	Log   *logrus.Entry            // Component-scoped logger

	// ===== Atomic (Self-Synchronized) =====
	// Safe for concurrent access from the input goroutine.

	IsPaused atomic.Bool
	IsMuted  atomic.Bool

	// ===== Tick Exclusive =====
	// Accessed only while the scheduler holds the tick mutex.

	Intent     Intent        // Pending player command; cleared after each tick
	PushEvents []PushEvent   // Push outcomes of the current tick
	Light      light.Options // Lighting policy
	Camera     Camera        // View offset, follows the player
	Lives      Lives         // Player life pool
	Player     ecs.Entity    // Player entity, zero until spawned
	Turn       uint64        // Last completed tick
	GameOver   bool          // Set when lives run out

	ViewWidth, ViewHeight int // Renderer viewport in cells
}

// NewContext creates a Context with a fresh ECS world and an entity index sized to m
func NewContext(m *level.Map, rng *rand.Rand, log *logrus.Entry) *Context {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}
	return &Context{
		Map:   m,
		World: ecs.NewWorld(),
		Index: NewSpatialGrid[ecs.Entity](m.Width(), m.Height()),
		Rng:   rng,
		Log:   log,
		Light: light.DefaultOptions(),
		Lives: Lives{Count: constants.InitialLives, Max: constants.InitialLives},
	}
}

// RecordPush appends a push outcome for render-phase consumers
func (c *Context) RecordPush(at vmath.Point, dir vmath.Direction, result level.PushResult) {
	c.PushEvents = append(c.PushEvents, PushEvent{At: at, Dir: dir, Result: result})
}

// SetMap swaps the level and resizes the entity index to match
func (c *Context) SetMap(m *level.Map) {
	c.Map = m
	c.Index.Resize(m.Width(), m.Height())
}

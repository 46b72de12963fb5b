package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// Generation defaults
const (
	DefaultAgents     = 100
	DefaultOpenness   = 50
	DefaultIterations = 6
	minDimension      = 3
)

var (
	ErrMapTooSmall       = errors.New("map dimensions too small")
	ErrInvalidAgents     = errors.New("agent count must be positive")
	ErrInvalidOpenness   = errors.New("openness must be within 0..100")
	ErrInvalidIterations = errors.New("iterations must not be negative")
)

type Config struct {
	Width, Height int

	// Agents is the number of carving agents dropped on the odd lattice
	Agents int

	// Openness: percent chance an agent is continuous, i.e. keeps walking through
	// already carved corridors once it runs out of fresh territory
	Openness int

	// Iterations: number of two-cell moves each agent attempts
	Iterations int

	Seed int64 // Optional (0 = Random), only used by Generate
}

// DefaultConfig returns a config with the standard agent parameters
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		Agents:     DefaultAgents,
		Openness:   DefaultOpenness,
		Iterations: DefaultIterations,
	}
}

// Validate reports the first invalid parameter
func (c Config) Validate() error {
	if c.Width < minDimension || c.Height < minDimension {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrMapTooSmall, c.Width, c.Height, minDimension, minDimension)
	}
	if c.Agents < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidAgents, c.Agents)
	}
	if c.Openness < 0 || c.Openness > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidOpenness, c.Openness)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.Iterations)
	}
	return nil
}

// Generate seeds an RNG from cfg.Seed and carves a maze
func Generate(cfg Config) (*level.Map, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Carve(cfg, rand.New(rand.NewSource(seed)))
}

// NewMaze carves a width x height maze with default agent parameters
func NewMaze(width, height int, rng *rand.Rand) (*level.Map, error) {
	return Carve(DefaultConfig(width, height), rng)
}

// Carve runs the agent carving algorithm on an all-Wall map
// The border ring is never carved; connectivity between carved regions is not guaranteed
// (use Regions to measure it)
func Carve(cfg Config, rng *rand.Rand) (*level.Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 1. All-Wall map (border included)
	m := level.New(cfg.Width, cfg.Height, level.Wall, 0)

	// 2. Drop agents on the odd lattice
	agents := placeAgents(m, cfg, rng)

	// 3. Each iteration moves every agent two cells
	for i := 0; i < cfg.Iterations; i++ {
		for a := range agents {
			stepAgent(m, &agents[a], rng)
		}
	}

	return m, nil
}

// --- Core Algorithm ---

type agent struct {
	pos        vmath.Point
	continuous bool
}

func placeAgents(m *level.Map, cfg Config, rng *rand.Rand) []agent {
	agents := make([]agent, cfg.Agents)
	for i := range agents {
		p := vmath.P(oddCoord(m.Width(), rng), oddCoord(m.Height(), rng))
		m.SetTile(p.X, p.Y, level.Floor)
		agents[i] = agent{
			pos:        p,
			continuous: rng.Intn(100) < cfg.Openness,
		}
	}
	return agents
}

// stepAgent prefers a direction leading to uncarved territory two cells ahead
// With none left, a continuous agent wanders into carved territory and the rest wait
func stepAgent(m *level.Map, a *agent, rng *rand.Rand) {
	dirs := vmath.Directions
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	var inBounds [4]vmath.Direction
	n := 0
	chosen, found := vmath.Left, false

	for _, d := range dirs {
		ahead := a.pos.Add(d.Vector().Scale(2))
		if !interior(m, ahead) {
			continue
		}
		inBounds[n] = d
		n++
		if !found && m.TileOr(ahead.X, ahead.Y, level.Wall) != level.Floor {
			chosen, found = d, true
		}
	}

	if !found {
		if !a.continuous || n == 0 {
			return
		}
		chosen = inBounds[rng.Intn(n)]
	}

	v := chosen.Vector()
	for step := 0; step < 2; step++ {
		a.pos = clampInterior(m, a.pos.Add(v))
		m.SetTile(a.pos.X, a.pos.Y, level.Floor)
	}
}

// --- Helpers ---

// oddCoord returns a random odd coordinate strictly inside [1, dim-2]
func oddCoord(dim int, rng *rand.Rand) int {
	return rng.Intn((dim-1)/2)*2 + 1
}

func interior(m *level.Map, p vmath.Point) bool {
	return p.X >= 1 && p.X <= m.Width()-2 && p.Y >= 1 && p.Y <= m.Height()-2
}

func clampInterior(m *level.Map, p vmath.Point) vmath.Point {
	return vmath.P(
		vmath.Clamp(p.X, 1, m.Width()-2),
		vmath.Clamp(p.Y, 1, m.Height()-2),
	)
}

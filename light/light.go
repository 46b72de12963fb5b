package light

import (
	"math"

	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// Kind selects which border cells a source casts rays toward
type Kind uint8

const (
	// Radial casts to every border cell of its circle
	Radial Kind = iota
	// Cone casts to the border arc centered on Facing with width Arc
	Cone
	// Beam casts a single ray along Facing
	Beam
)

func (k Kind) String() string {
	switch k {
	case Radial:
		return "radial"
	case Cone:
		return "cone"
	case Beam:
		return "beam"
	default:
		return "unknown"
	}
}

// Blend controls how a ray combines with light already written this pass
type Blend uint8

const (
	// Max keeps the brightest value any ray wrote
	Max Blend = iota
	// Overwrite lets the last ray win, so later rays can darken shared cells
	Overwrite
)

// Options tune the lighting pass
type Options struct {
	// Occlude stops each ray after the first opaque cell; the blocking cell itself is lit
	Occlude bool
	Blend   Blend
}

// DefaultOptions returns occluding, max-blended lighting
func DefaultOptions() Options {
	return Options{Occlude: true, Blend: Max}
}

// Source is one light emitter
type Source struct {
	Pos    vmath.Point
	Radius float64
	Kind   Kind
	Facing vmath.Direction
	Arc    float64 // Cone width in radians
}

// Targets returns the ray end points of the source
func (s Source) Targets() []vmath.Point {
	c := vmath.Circle{Center: s.Pos, Radius: s.Radius}

	switch s.Kind {
	case Cone:
		return c.Cone(s.Facing, s.Arc)
	case Beam:
		if s.Radius < 0 {
			return nil
		}
		reach := int(math.Floor(s.Radius))
		return []vmath.Point{s.Pos.Add(s.Facing.Vector().Scale(reach))}
	default:
		return c.Border()
	}
}

// Compute darkens the map and re-accumulates light from every source
func Compute(m *level.Map, sources []Source, opts Options) {
	m.DarkenAll()
	for _, s := range sources {
		Apply(m, s, opts)
	}
}

// Apply adds one source to the current light grid without darkening first
// Returns the number of cell writes performed
func Apply(m *level.Map, s Source, opts Options) int {
	writes := 0
	for _, target := range s.Targets() {
		writes += Cast(m, s.Pos, target, opts)
	}
	return writes
}

// Cast walks Line(from, to) writing 1 - i/len at the i-th cell
// The ray ends at the map edge, or after the first opaque cell when occluding
// Returns the number of cells written
func Cast(m *level.Map, from, to vmath.Point, opts Options) int {
	line := vmath.Line{From: from, To: to}
	n := float64(line.Len())
	written := 0

	line.Walk(func(i int, p vmath.Point) bool {
		if !m.InBounds(p.X, p.Y) {
			return false
		}

		v := 1 - float64(i)/n
		if opts.Blend == Overwrite {
			m.SetLight(p.X, p.Y, v)
		} else if cur, _ := m.Light(p.X, p.Y); v > cur {
			m.SetLight(p.X, p.Y, v)
		}
		written++

		// The origin never blocks its own light
		if opts.Occlude && i > 0 && m.IsOpaque(p.X, p.Y) {
			return false
		}
		return true
	})
	return written
}

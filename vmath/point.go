package vmath

import (
	"fmt"
	"math"
)

// Point is an integer grid coordinate, also used as a displacement vector
type Point struct {
	X, Y int
}

func P(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

func (p Point) DistSq(o Point) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

func (p Point) Dist(o Point) float64 {
	return math.Sqrt(float64(p.DistSq(o)))
}

// Angle returns atan2(y, x) + π folded into [0, 2π)
// This is an offset convention, not raw atan2: the negative x axis is 0, +y (screen down) is 3π/2
// The origin has no direction; atan2(0, 0) is 0 so the origin reports π
func (p Point) Angle() float64 {
	a := math.Atan2(float64(p.Y), float64(p.X)) + math.Pi
	if a >= TwoPi {
		return 0
	}
	return a
}

// Neighbors4 returns the orthogonal neighbors in Direction ring order
func (p Point) Neighbors4() [4]Point {
	var n [4]Point
	for i, d := range Directions {
		n[i] = p.Add(d.Vector())
	}
	return n
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

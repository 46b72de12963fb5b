package vmath

import "math"

// Angle constants in radians
const (
	TwoPi  = 2 * math.Pi
	HalfPi = math.Pi / 2
)

// --- Integer helpers ---

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Angles ---

// NormalizeAngle folds any angle into [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of values a hair below a multiple of 2π can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleDiff returns the signed shortest rotation from a to b in (-π, π]
func AngleDiff(a, b float64) float64 {
	d := NormalizeAngle(b - a)
	if d > math.Pi {
		d -= TwoPi
	}
	return d
}

func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

package vmath

// InArc reports whether angle a lies in the half-open interval (from, to]
// from/to need not be normalized: a is also tested one full turn up and down,
// so ranges such as (-π/4, π/4] or (7π/4, 9π/4] wrap correctly
func InArc(a, from, to float64) bool {
	for _, c := range [3]float64{a, a + TwoPi, a - TwoPi} {
		if c > from && c <= to {
			return true
		}
	}
	return false
}

// ArcAround returns the (from, to] bounds of an arc of the given width centered on a heading
func ArcAround(center, width float64) (float64, float64) {
	half := width / 2
	return center - half, center + half
}

// FilterArc keeps the points whose angle seen from origin lies in (from, to]
// The origin itself has no meaningful angle and is dropped
func FilterArc(origin Point, points []Point, from, to float64) []Point {
	if to-from >= TwoPi {
		out := make([]Point, 0, len(points))
		for _, p := range points {
			if p != origin {
				out = append(out, p)
			}
		}
		return out
	}

	out := make([]Point, 0, len(points)/2)
	for _, p := range points {
		if p == origin {
			continue
		}
		if InArc(p.Sub(origin).Angle(), from, to) {
			out = append(out, p)
		}
	}
	return out
}

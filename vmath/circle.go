package vmath

import "math"

// Circle is a disc on the grid; Radius may be fractional for smoother rasterization
type Circle struct {
	Center Point
	Radius float64
}

// sqrtHalf bounds the first octant: dy runs from 0 to floor(r·√0.5)
var sqrtHalf = math.Sqrt(0.5)

// Border returns the discrete outline using octant reflection
// Emission order interleaves octants; sort by angle if a connected walk is needed
// Radius < 0 yields nil, radius below 1 yields only the center
func (c Circle) Border() []Point {
	if c.Radius < 0 {
		return nil
	}
	if c.Radius < 1 {
		return []Point{c.Center}
	}

	r := c.Radius
	cx, cy := c.Center.X, c.Center.Y
	sizeY := int(math.Floor(r * sqrtHalf))
	border := make([]Point, 0, 8*(sizeY+1))

	for dy := 0; dy <= sizeY; dy++ {
		fdy := float64(dy)
		dx := int(math.Floor(math.Sqrt(r*r - fdy*fdy)))

		// Axis points appear once per axis
		if dy != 0 {
			border = append(border, Point{cx - dx, cy - dy}, Point{cx + dx, cy + dy})
		}
		border = append(border, Point{cx - dx, cy + dy}, Point{cx + dx, cy - dy})

		// Octant boundary: the mirrored pair would repeat the diagonal points
		if dx == dy {
			continue
		}

		if dy != 0 {
			border = append(border, Point{cx - dy, cy + dx}, Point{cx + dy, cy - dx})
		}
		border = append(border, Point{cx - dy, cy - dx}, Point{cx + dy, cy + dx})
	}

	return border
}

// Fill returns every cell of the disc, row by row from top to bottom
// Each row spans between the outermost border cells on that row
func (c Circle) Fill() []Point {
	border := c.Border()
	if len(border) <= 1 {
		return border
	}

	extent := int(math.Floor(c.Radius))
	top := c.Center.Y - extent
	rows := 2*extent + 1

	minX := make([]int, rows)
	maxX := make([]int, rows)
	seen := make([]bool, rows)

	for _, p := range border {
		row := p.Y - top
		if !seen[row] {
			seen[row] = true
			minX[row], maxX[row] = p.X, p.X
			continue
		}
		if p.X < minX[row] {
			minX[row] = p.X
		}
		if p.X > maxX[row] {
			maxX[row] = p.X
		}
	}

	fill := make([]Point, 0, rows*rows)
	for row := 0; row < rows; row++ {
		if !seen[row] {
			continue
		}
		for x := minX[row]; x <= maxX[row]; x++ {
			fill = append(fill, Point{x, top + row})
		}
	}
	return fill
}

// Arc returns the border points whose angle from the center lies in (from, to]
func (c Circle) Arc(from, to float64) []Point {
	return FilterArc(c.Center, c.Border(), from, to)
}

// Cone returns the border arc of the given angular width centered on a heading
func (c Circle) Cone(facing Direction, width float64) []Point {
	from, to := ArcAround(facing.Radians(), width)
	return c.Arc(from, to)
}

// Contains reports whether p lies inside or on the circle
func (c Circle) Contains(p Point) bool {
	return float64(p.DistSq(c.Center)) <= c.Radius*c.Radius
}

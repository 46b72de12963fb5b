package components

import "github.com/lixenwraith/vi-rogue/vmath"

// PositionComponent is an entity's map cell
type PositionComponent struct {
	X, Y int
}

// Point returns the position as a vmath.Point
func (p PositionComponent) Point() vmath.Point {
	return vmath.Point{X: p.X, Y: p.Y}
}

// Set moves the position to pt
func (p *PositionComponent) Set(pt vmath.Point) {
	p.X, p.Y = pt.X, pt.Y
}

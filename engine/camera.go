package engine

import "github.com/lixenwraith/vi-rogue/vmath"

// Camera is a screen offset: screen = world + Offset
type Camera struct {
	Offset vmath.Point
}

// Follow centers the view on target
func (c *Camera) Follow(target vmath.Point, viewW, viewH int) {
	c.Offset = vmath.P(viewW/2-target.X, viewH/2-target.Y)
}

func (c Camera) ToScreen(p vmath.Point) vmath.Point { return p.Add(c.Offset) }
func (c Camera) ToWorld(p vmath.Point) vmath.Point  { return p.Sub(c.Offset) }

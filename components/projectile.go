package components

import "github.com/lixenwraith/vi-rogue/vmath"

// ProjectileComponent is a shot flying in a straight line
// Lifetime counts down once per tick; the projectile despawns once it drops below zero
type ProjectileComponent struct {
	Dir      vmath.Direction
	Lifetime int
}

// Expired decrements the lifetime and reports whether it fell below zero
func (p *ProjectileComponent) Expired() bool {
	p.Lifetime--
	return p.Lifetime < 0
}

package components

import "github.com/lixenwraith/vi-rogue/light"

// LightEmitterComponent turns an entity into a light source
// Facing comes from the entity's player, heading or projectile component
type LightEmitterComponent struct {
	Radius float64
	Kind   light.Kind
	Arc    float64 // Cone width in radians, ignored by radial and beam sources
}

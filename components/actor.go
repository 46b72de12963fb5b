package components

import "github.com/lixenwraith/vi-rogue/vmath"

// PlayerComponent marks the controlled entity; Facing is the last move or shot direction
type PlayerComponent struct {
	Facing vmath.Direction
}

// MonsterComponent marks a hostile wanderer
type MonsterComponent struct {
	Bumps int // Times this monster has hit the player
}

// HeadingComponent is the direction a monster walks until blocked
type HeadingComponent struct {
	Dir vmath.Direction
}

// SolidComponent marks entities that occupy their cell for the tick
type SolidComponent struct{}

package constants

import "time"

// Map Defaults
const (
	// MapWidth is the default maze width in cells
	MapWidth = 30

	// MapHeight is the default maze height in cells
	MapHeight = 40

	// ScatterWalls and ScatterHoles are the default counts for the scatter generator
	ScatterWalls = 50
	ScatterHoles = 20
)

// Gameplay Constants
const (
	// InitialLives is the player's starting life pool
	InitialLives = 3

	// ProjectileLifetime is the number of ticks a projectile flies before despawning
	ProjectileLifetime = 10

	// MonsterCount is the number of monsters placed by the spawner
	MonsterCount = 5

	// PlayerLightRadius is the radius of the player's radial light
	PlayerLightRadius = 8.0

	// MonsterLightRadius is the reach of a monster's forward cone
	MonsterLightRadius = 4.0

	// ProjectileLightRadius is the radius of the glow around a projectile
	ProjectileLightRadius = 2.0
)

// Game Loop Timing
const (
	// AutoTickInterval advances the world while the player is idle in realtime mode
	AutoTickInterval = 250 * time.Millisecond
)

package constants

// Rendering Constants
const (
	// LightThreshold is the minimum light at which a cell or entity is drawn
	LightThreshold = 0.1

	// PlayerChar, MonsterChar and ProjectileChar are entity glyphs
	PlayerChar     = '@'
	MonsterChar    = 'M'
	ProjectileChar = '*'

	// StatusBarHeight is the number of rows reserved below the map view
	StatusBarHeight = 1
)

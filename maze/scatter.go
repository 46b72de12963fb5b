package maze

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/vi-rogue/level"
)

// ScatterConfig describes an open arena with randomly dropped walls and pits
type ScatterConfig struct {
	Width, Height int
	Walls         int // Wall tiles dropped on the interior
	Holes         int // Abyss tiles dropped on the interior, after walls
}

// Scatter builds a walled floor arena and drops Walls then Holes at random interior cells
// Later drops overwrite earlier ones, so counts are upper bounds
func Scatter(cfg ScatterConfig, rng *rand.Rand) (*level.Map, error) {
	if cfg.Width < minDimension || cfg.Height < minDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrMapTooSmall, cfg.Width, cfg.Height)
	}

	m := level.NewEmpty(cfg.Width, cfg.Height, true)
	drop(m, cfg.Walls, level.Wall, rng)
	drop(m, cfg.Holes, level.Abyss, rng)
	return m, nil
}

func drop(m *level.Map, count int, t level.Tile, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		x := 1 + rng.Intn(m.Width()-2)
		y := 1 + rng.Intn(m.Height()-2)
		m.SetTile(x, y, t)
	}
}

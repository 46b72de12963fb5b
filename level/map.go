package level

import (
	"strings"

	"github.com/lixenwraith/vi-rogue/grid"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// Map owns the tile grid, the parallel light grid and the per-tick occupancy bitmap
// All three grids share the same dimensions
type Map struct {
	tiles    *grid.Grid[Tile]
	light    *grid.Grid[float64]
	occupied *grid.Grid[bool]
}

// New creates a map with every tile and light cell set to the given defaults
func New(width, height int, tile Tile, light float64) *Map {
	return &Map{
		tiles:    grid.New(width, height, tile),
		light:    grid.New(width, height, light),
		occupied: grid.New(width, height, false),
	}
}

// NewEmpty creates an unlit floor map, optionally ringed with walls
func NewEmpty(width, height int, border bool) *Map {
	m := New(width, height, Floor, 0)
	if border {
		m.SetBorder(Wall)
	}
	return m
}

func (m *Map) Width() int  { return m.tiles.Width() }
func (m *Map) Height() int { return m.tiles.Height() }

func (m *Map) InBounds(x, y int) bool { return m.tiles.InBounds(x, y) }

// SetBorder overwrites the outermost ring of cells
func (m *Map) SetBorder(t Tile) {
	w, h := m.Width(), m.Height()
	for x := 0; x < w; x++ {
		m.tiles.Set(x, 0, t)
		m.tiles.Set(x, h-1, t)
	}
	for y := 0; y < h; y++ {
		m.tiles.Set(0, y, t)
		m.tiles.Set(w-1, y, t)
	}
}

// --- Tiles ---

func (m *Map) Tile(x, y int) (Tile, bool) { return m.tiles.Get(x, y) }

func (m *Map) SetTile(x, y int, t Tile) (int, bool) { return m.tiles.Set(x, y, t) }

// TileOr returns def for out-of-bounds coordinates
func (m *Map) TileOr(x, y int, def Tile) Tile {
	if t, ok := m.tiles.Get(x, y); ok {
		return t
	}
	return def
}

// IsFree reports walkable floor; Abyss and Wall are not free
func (m *Map) IsFree(x, y int) bool {
	return m.TileOr(x, y, Wall) == Floor
}

// IsPassable reports cells a projectile can fly through: Floor or Abyss
func (m *Map) IsPassable(x, y int) bool {
	t := m.TileOr(x, y, Wall)
	return t == Floor || t == Abyss
}

// IsOpaque reports cells that stop light; out of bounds counts as Wall
func (m *Map) IsOpaque(x, y int) bool {
	return m.TileOr(x, y, Wall) == Wall
}

// FloorCount returns the number of Floor tiles
func (m *Map) FloorCount() int {
	return m.tiles.Count(Floor)
}

// --- Light ---

func (m *Map) Light(x, y int) (float64, bool) { return m.light.Get(x, y) }

func (m *Map) SetLight(x, y int, v float64) (int, bool) { return m.light.Set(x, y, v) }

// DarkenAll resets every light cell to 0 ahead of a lighting pass
func (m *Map) DarkenAll() {
	m.light.Fill(0)
}

// --- Occupancy ---

// ClearOccupancy drops every occupancy mark; called at the start of each tick
func (m *Map) ClearOccupancy() {
	m.occupied.Fill(false)
}

// Occupy marks (x, y) as holding a solid entity, false if out of bounds
func (m *Map) Occupy(x, y int) bool {
	_, ok := m.occupied.Set(x, y, true)
	return ok
}

// Vacate clears the occupancy mark of a single cell
func (m *Map) Vacate(x, y int) {
	m.occupied.Set(x, y, false)
}

func (m *Map) IsOccupied(x, y int) bool {
	v, _ := m.occupied.Get(x, y)
	return v
}

// IsFreeAt reports floor that no solid entity currently occupies
func (m *Map) IsFreeAt(p vmath.Point) bool {
	return m.IsFree(p.X, p.Y) && !m.IsOccupied(p.X, p.Y)
}

// --- Renderer access ---

// Each visits every cell row-major with its tile and light until fn returns false
func (m *Map) Each(fn func(x, y int, t Tile, light float64) bool) {
	m.tiles.Each(func(x, y int, t Tile) bool {
		l, _ := m.light.Get(x, y)
		return fn(x, y, t, l)
	})
}

// String renders the tile grid as ASCII rows
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.Width() + 1) * m.Height())
	m.tiles.Each(func(x, y int, t Tile) bool {
		sb.WriteRune(t.Rune())
		if x == m.Width()-1 {
			sb.WriteByte('\n')
		}
		return true
	})
	return sb.String()
}

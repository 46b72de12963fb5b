package engine

import "github.com/lixenwraith/vi-rogue/vmath"

// MaxEntitiesPerCell bounds a cell's fixed entity array
// Solid entities never legitimately stack, so overflow is a soft clip rather than an error
const MaxEntitiesPerCell = 15

// Cell holds up to MaxEntitiesPerCell entities, densely packed in Entities[:Count]
type Cell[E comparable] struct {
	Count    uint8
	Entities [MaxEntitiesPerCell]E
}

// SpatialGrid is a dense 2D entity index for O(1) "who is here" queries without allocation
// It is rebuilt from entity positions every tick, so entries never outlive a move
type SpatialGrid[E comparable] struct {
	Width  int
	Height int
	Cells  []Cell[E] // 1D array: index = y*Width + x
}

// NewSpatialGrid creates a new grid with the specified dimensions
func NewSpatialGrid[E comparable](width, height int) *SpatialGrid[E] {
	return &SpatialGrid[E]{
		Width:  width,
		Height: height,
		Cells:  make([]Cell[E], width*height),
	}
}

func (g *SpatialGrid[E]) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Add inserts an entity at (x, y)
// O(1), Returns false if bounds invalid or cell full (soft clip)
func (g *SpatialGrid[E]) Add(e E, x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}

	cell := &g.Cells[y*g.Width+x]
	if cell.Count < MaxEntitiesPerCell {
		cell.Entities[cell.Count] = e
		cell.Count++
		return true
	}
	return false
}

// Remove deletes an entity from (x, y), reporting whether it was present
// O(k) where k <= 15. Uses swap-remove to maintain dense packing
func (g *SpatialGrid[E]) Remove(e E, x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}

	cell := &g.Cells[y*g.Width+x]
	for i := uint8(0); i < cell.Count; i++ {
		if cell.Entities[i] == e {
			cell.Count--
			if i < cell.Count {
				cell.Entities[i] = cell.Entities[cell.Count]
			}
			var zero E
			cell.Entities[cell.Count] = zero
			return true
		}
	}
	return false
}

// Move relocates an entity between cells within a tick
// The entity is left in place if the destination is invalid or full
func (g *SpatialGrid[E]) Move(e E, from, to vmath.Point) bool {
	if !g.inBounds(to.X, to.Y) {
		return false
	}
	if cell := &g.Cells[to.Y*g.Width+to.X]; cell.Count >= MaxEntitiesPerCell {
		return false
	}
	g.Remove(e, from.X, from.Y)
	return g.Add(e, to.X, to.Y)
}

// GetAllAt returns a slice view of entities at (x, y)
// Callers must copy before mutating the grid
// O(1), returns nil if empty or out of bounds
func (g *SpatialGrid[E]) GetAllAt(x, y int) []E {
	if !g.inBounds(x, y) {
		return nil
	}

	cell := &g.Cells[y*g.Width+x]
	if cell.Count == 0 {
		return nil
	}
	return cell.Entities[:cell.Count]
}

// HasAny returns true if there is at least one entity at (x, y). O(1)
func (g *SpatialGrid[E]) HasAny(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.Cells[y*g.Width+x].Count > 0
}

// Clear removes all entities from all cells
func (g *SpatialGrid[E]) Clear() {
	var zero [MaxEntitiesPerCell]E
	for i := range g.Cells {
		g.Cells[i].Count = 0
		g.Cells[i].Entities = zero
	}
}

// Resize resizes the grid, clearing all data
// Entities must be re-added from their positions afterwards
func (g *SpatialGrid[E]) Resize(newWidth, newHeight int) {
	g.Width = newWidth
	g.Height = newHeight
	g.Cells = make([]Cell[E], newWidth*newHeight)
}

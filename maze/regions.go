package maze

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/vmath"
)

// Region is a 4-connected set of Floor tiles
type Region struct {
	Anchor vmath.Point // First cell found in row-major order
	Cells  mapset.Set[vmath.Point]
}

func (r Region) Size() int { return r.Cells.Size() }

// Reachable flood-fills Floor tiles 4-connected to start
// Returns an empty set if start is not Floor
func Reachable(m *level.Map, start vmath.Point) mapset.Set[vmath.Point] {
	visited := mapset.New[vmath.Point]()
	if !m.IsFree(start.X, start.Y) {
		return visited
	}

	q := queue.New[vmath.Point]()
	q.Enqueue(start)
	visited.Put(start)

	for !q.Empty() {
		curr := q.Dequeue()
		for _, n := range curr.Neighbors4() {
			if visited.Has(n) || !m.IsFree(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}
	return visited
}

// Regions partitions every Floor tile into connected regions, largest first
func Regions(m *level.Map) []Region {
	seen := mapset.New[vmath.Point]()
	var regions []Region

	m.Each(func(x, y int, t level.Tile, _ float64) bool {
		p := vmath.P(x, y)
		if t != level.Floor || seen.Has(p) {
			return true
		}
		cells := Reachable(m, p)
		cells.Each(func(c vmath.Point) { seen.Put(c) })
		regions = append(regions, Region{Anchor: p, Cells: cells})
		return true
	})

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Size() > regions[j].Size()
	})
	return regions
}

// Coverage returns the fraction of Floor tiles inside the largest region
// A fully connected map reports 1, a map without floor reports 0
func Coverage(m *level.Map) float64 {
	floor := m.FloorCount()
	if floor == 0 {
		return 0
	}
	regions := Regions(m)
	return float64(regions[0].Size()) / float64(floor)
}

package grid

// Grid is a dense fixed-size 2D array stored row-major
// Out-of-bounds access never panics: getters report ok=false and setters are no-ops
type Grid[T comparable] struct {
	width  int
	height int
	data   []T // index = y*width + x
}

// New creates a width x height grid with every cell set to fill
// Non-positive dimensions yield an empty grid where every coordinate is out of bounds
func New[T comparable](width, height int, fill T) *Grid[T] {
	if width <= 0 || height <= 0 {
		return &Grid[T]{}
	}

	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}
	return &Grid[T]{width: width, height: height, data: data}
}

// Width returns the number of columns
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid[T]) Height() int { return g.height }

// Size returns the total cell count
func (g *Grid[T]) Size() int { return len(g.data) }

// InBounds reports whether (x, y) addresses a cell
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// ToIndex converts (x, y) to the linear index, ok=false if out of bounds
func (g *Grid[T]) ToIndex(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return y*g.width + x, true
}

// ToCoord is the inverse of ToIndex
// Result is only meaningful for 0 <= i < Size()
func (g *Grid[T]) ToCoord(i int) (int, int) {
	if g.width == 0 {
		return 0, 0
	}
	return i % g.width, i / g.width
}

// Get returns the value at (x, y). O(1)
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[y*g.width+x], true
}

// Set overwrites (x, y) and returns its linear index
// No-op returning ok=false if out of bounds
func (g *Grid[T]) Set(x, y int, v T) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	idx := y*g.width + x
	g.data[idx] = v
	return idx, true
}

// Fill sets every cell to v
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Count returns the number of cells equal to v
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Each visits cells in row-major order until fn returns false
func (g *Grid[T]) Each(fn func(x, y int, v T) bool) {
	for i, v := range g.data {
		if !fn(i%g.width, i/g.width, v) {
			return
		}
	}
}

package vmath

// Line is a segment between two grid points
type Line struct {
	From, To Point
}

// LineWalker implements a zero-allocation iterator over the cells of a Line
// Symmetric double-increment DDA: at every step the sign of (1+2xi)*ny - (1+2yi)*nx
// decides between a vertical step, a horizontal step, or both (exact diagonal crossing)
type LineWalker struct {
	curr           Point
	stepX, stepY   int
	countX, countY int
	xi, yi         int
	index          int

	started bool
	done    bool
}

// NewLineWalker creates an iterator from 'from' to 'to', both inclusive
func NewLineWalker(from, to Point) LineWalker {
	delta := to.Sub(from)

	w := LineWalker{
		curr:   from,
		stepX:  1,
		stepY:  1,
		countX: Abs(delta.X),
		countY: Abs(delta.Y),
	}
	if delta.X <= 0 {
		w.stepX = -1
	}
	if delta.Y <= 0 {
		w.stepY = -1
	}
	return w
}

// Next advances to the next cell
// Returns true if a valid cell is available via Pos()
func (w *LineWalker) Next() bool {
	if w.done {
		return false
	}
	if !w.started {
		w.started = true
		return true
	}

	if w.xi >= w.countX && w.yi >= w.countY {
		w.done = true
		return false
	}

	compare := (1+2*w.xi)*w.countY - (1+2*w.yi)*w.countX
	if compare >= 0 {
		w.yi++
		w.curr.Y += w.stepY
	}
	if compare <= 0 {
		w.xi++
		w.curr.X += w.stepX
	}
	w.index++
	return true
}

// Pos returns the current cell
func (w *LineWalker) Pos() Point {
	return w.curr
}

// Index returns the zero-based position of the current cell along the line
func (w *LineWalker) Index() int {
	return w.index
}

// --- Line rasterization ---

// ToGrid returns every cell from From to To inclusive, always walking From -> To
// Diagonal crossings step both axes at once so consecutive cells are 8-connected
func (l Line) ToGrid() []Point {
	cells := make([]Point, 0, Abs(l.To.X-l.From.X)+Abs(l.To.Y-l.From.Y)+1)
	w := NewLineWalker(l.From, l.To)
	for w.Next() {
		cells = append(cells, w.Pos())
	}
	return cells
}

// Walk visits cells in ToGrid order with their index, stopping when fn returns false
func (l Line) Walk(fn func(i int, p Point) bool) {
	w := NewLineWalker(l.From, l.To)
	for w.Next() {
		if !fn(w.Index(), w.Pos()) {
			return
		}
	}
}

// Len returns the number of cells ToGrid would produce
func (l Line) Len() int {
	n := 0
	w := NewLineWalker(l.From, l.To)
	for w.Next() {
		n++
	}
	return n
}

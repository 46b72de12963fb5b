package level

// Tile classifies the terrain of one cell
type Tile uint8

const (
	Wall Tile = iota
	Floor
	Abyss
)

func (t Tile) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Abyss:
		return "Abyss"
	default:
		return "Unknown"
	}
}

// Rune is the ASCII form used by Map.String and the maze printer
func (t Tile) Rune() rune {
	switch t {
	case Wall:
		return '#'
	case Floor:
		return '.'
	case Abyss:
		return ' '
	default:
		return '?'
	}
}

// PushResult is the outcome of bumping into a cell
type PushResult uint8

const (
	// Free: nothing to push, the cell is walkable floor
	Free PushResult = iota
	// Pushed: the wall slid one cell onto the floor beyond it
	Pushed
	// Blocked: nothing moved
	Blocked
	// Tumble: the wall fell into the abyss beyond it, filling it
	Tumble
)

func (r PushResult) String() string {
	switch r {
	case Free:
		return "Free"
	case Pushed:
		return "Pushed"
	case Blocked:
		return "Blocked"
	case Tumble:
		return "Tumble"
	default:
		return "Unknown"
	}
}

// Moved reports whether the push vacated the target cell
func (r PushResult) Moved() bool {
	return r == Pushed || r == Tumble
}

package input

import "strconv"

// InputState tracks the parser state machine
type InputState uint8

const (
	StateIdle     InputState = iota // Default state, awaiting initial key
	StateCount                      // Accumulating numeric prefix (1-9 start, 0 continues)
	StateFireWait                   // After f, awaiting a direction
)

// maxCount caps the numeric prefix
const maxCount = 99

// String describes the pending state for the status bar
func (s InputState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCount:
		return "Count"
	case StateFireWait:
		return "Fire"
	default:
		return "Unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

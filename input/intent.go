package input

import "github.com/lixenwraith/vi-rogue/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentPause      // p
	IntentMute       // m
	IntentRegenerate // r
	IntentResize     // Terminal resize event

	// Turn intents, each consumes one tick per count
	IntentMove  // h,j,k,l, arrows
	IntentShoot // H,J,K,L, Shift+arrows, f + direction
	IntentWait  // '.', space
)

// String returns intent name for debugging
func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentPause:
		return "Pause"
	case IntentMute:
		return "Mute"
	case IntentRegenerate:
		return "Regenerate"
	case IntentResize:
		return "Resize"
	case IntentMove:
		return "Move"
	case IntentShoot:
		return "Shoot"
	case IntentWait:
		return "Wait"
	default:
		return "Unknown"
	}
}

// Intent is a parsed player command
type Intent struct {
	Type  IntentType
	Dir   vmath.Direction // Move and Shoot only
	Count int             // Repeat count, at least 1 for turn intents
}

// IsTurn reports whether the intent advances the game
func (i Intent) IsTurn() bool {
	return i.Type == IntentMove || i.Type == IntentShoot || i.Type == IntentWait
}

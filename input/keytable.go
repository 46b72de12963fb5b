package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/vmath"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorMove               // Direction key; shoots when a fire prefix is pending
	BehaviorShoot              // Direct shot
	BehaviorPrefix             // f prefix, awaits a direction
	BehaviorWait               // Skip a turn
	BehaviorSystem             // Emits IntentType immediately, ignores counts
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	Dir        vmath.Direction
	IntentType IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {BehaviorSystem, 0, IntentQuit},
			tcell.KeyEscape: {BehaviorSystem, 0, IntentQuit},
			tcell.KeyLeft:   {BehaviorMove, vmath.Left, IntentNone},
			tcell.KeyDown:   {BehaviorMove, vmath.Down, IntentNone},
			tcell.KeyUp:     {BehaviorMove, vmath.Up, IntentNone},
			tcell.KeyRight:  {BehaviorMove, vmath.Right, IntentNone},
		},
		Runes: map[rune]KeyEntry{
			// Movement
			'h': {BehaviorMove, vmath.Left, IntentNone},
			'j': {BehaviorMove, vmath.Down, IntentNone},
			'k': {BehaviorMove, vmath.Up, IntentNone},
			'l': {BehaviorMove, vmath.Right, IntentNone},

			// Shooting
			'H': {BehaviorShoot, vmath.Left, IntentNone},
			'J': {BehaviorShoot, vmath.Down, IntentNone},
			'K': {BehaviorShoot, vmath.Up, IntentNone},
			'L': {BehaviorShoot, vmath.Right, IntentNone},
			'f': {BehaviorPrefix, 0, IntentNone},

			// Turn skip
			'.': {BehaviorWait, 0, IntentNone},
			' ': {BehaviorWait, 0, IntentNone},

			// System
			'q': {BehaviorSystem, 0, IntentQuit},
			'p': {BehaviorSystem, 0, IntentPause},
			'm': {BehaviorSystem, 0, IntentMute},
			'r': {BehaviorSystem, 0, IntentRegenerate},
		},
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/vmath"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve configured action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit":       {BehaviorSystem, 0, IntentQuit},
	"pause":      {BehaviorSystem, 0, IntentPause},
	"mute":       {BehaviorSystem, 0, IntentMute},
	"regenerate": {BehaviorSystem, 0, IntentRegenerate},

	// Movement
	"move_left":  {BehaviorMove, vmath.Left, IntentNone},
	"move_down":  {BehaviorMove, vmath.Down, IntentNone},
	"move_up":    {BehaviorMove, vmath.Up, IntentNone},
	"move_right": {BehaviorMove, vmath.Right, IntentNone},

	// Shooting
	"shoot_left":  {BehaviorShoot, vmath.Left, IntentNone},
	"shoot_down":  {BehaviorShoot, vmath.Down, IntentNone},
	"shoot_up":    {BehaviorShoot, vmath.Up, IntentNone},
	"shoot_right": {BehaviorShoot, vmath.Right, IntentNone},
	"fire":        {BehaviorPrefix, 0, IntentNone},

	"wait": {BehaviorWait, 0, IntentNone},
}

// specialKeyNames maps configurable names to tcell keys
var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"down":   tcell.KeyDown,
	"up":     tcell.KeyUp,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
}

// runeAliases covers keys that cannot be written as a bare single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

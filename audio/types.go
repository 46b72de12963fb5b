package audio

import "github.com/lixenwraith/vi-rogue/level"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPush    SoundType = iota // Wall slid one cell
	SoundTumble                   // Wall fell into a pit
	SoundBlocked                  // Wall would not move
	soundTypeCount
)

// String returns sound name for debugging
func (s SoundType) String() string {
	switch s {
	case SoundPush:
		return "Push"
	case SoundTumble:
		return "Tumble"
	case SoundBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// SoundForPush maps a push outcome to its cue; Free has none
func SoundForPush(r level.PushResult) (SoundType, bool) {
	switch r {
	case level.Pushed:
		return SoundPush, true
	case level.Tumble:
		return SoundTumble, true
	case level.Blocked:
		return SoundBlocked, true
	default:
		return 0, false
	}
}

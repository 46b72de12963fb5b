package constants

import "time"

// Audio Engine Timing
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between consecutive cues of the same kind
	MinSoundGap = 50 * time.Millisecond
)

// Push Cue Timing
const (
	// PushSoundDuration is the length of the grinding slide when a wall moves
	PushSoundDuration = 120 * time.Millisecond
	PushSoundAttack   = 5 * time.Millisecond
	PushSoundRelease  = 60 * time.Millisecond

	// TumbleSoundDuration is the falling sweep when a wall fills a pit
	TumbleSoundDuration = 400 * time.Millisecond
	TumbleSoundAttack   = 10 * time.Millisecond
	TumbleSoundRelease  = 250 * time.Millisecond

	// BlockedSoundDuration is the short thud against an immovable wall
	BlockedSoundDuration = 80 * time.Millisecond
	BlockedSoundAttack   = 5 * time.Millisecond
	BlockedSoundRelease  = 20 * time.Millisecond
)

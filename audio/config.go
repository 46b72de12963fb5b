package audio

import "github.com/lixenwraith/vi-rogue/constants"

// AudioConfig holds mixer volumes and output format
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the standard volumes at 48 kHz
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundPush:    0.6,
			SoundTumble:  0.8,
			SoundBlocked: 0.4,
		},
	}
}

// clampVolume bounds v to 0..1
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SetVolume sets the effect volume of s, clamped to 0..1
func (c *AudioConfig) SetVolume(s SoundType, v float64) {
	if s < 0 || s >= soundTypeCount {
		return
	}
	c.EffectVolumes[s] = clampVolume(v)
}

package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-rogue/constants"
)

// Waveform selects the raw signal a sweep produces
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample returns the waveform value at phase in [0,1)
func (w Waveform) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// sweep is a finite mono signal whose pitch moves linearly between two frequencies
type sweep struct {
	wave     Waveform
	from, to float64
	rate     float64
	length   int
	pos      int
	phase    float64
}

// Sweep creates a signal gliding from one frequency to another; grinding slides and falls use it
func Sweep(from, to float64, d time.Duration, wave Waveform, rate beep.SampleRate) beep.Streamer {
	return &sweep{wave: wave, from: from, to: to, rate: float64(rate), length: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}
		v := s.wave.sample(s.phase)
		samples[i] = [2]float64{v, v}

		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.length)
		_, s.phase = math.Modf(s.phase + freq/s.rate)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// ramp scales a signal by a linear fade-in and fade-out, cutting it at length
type ramp struct {
	src             beep.Streamer
	length          int
	attack, release int
	pos             int
}

// Shape wraps s with a fade-in of attack and a fade-out of release, ending at d
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &ramp{src: s, length: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

// gain is the smaller of the fade-in and fade-out levels at pos
func (r *ramp) gain(pos int) float64 {
	g := 1.0
	if r.attack > 0 && pos < r.attack {
		g = float64(pos) / float64(r.attack)
	}
	if tail := r.length - pos; r.release > 0 && tail < r.release {
		g = math.Min(g, float64(tail)/float64(r.release))
	}
	return g
}

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.src.Stream(samples)
	for i := 0; i < n; i++ {
		if r.pos >= r.length {
			return i, i > 0
		}
		g := r.gain(r.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		r.pos++
	}
	return n, ok
}

func (r *ramp) Err() error { return r.src.Err() }

// gainOf scales s by a linear level; level 0 is silent since log2(0) is -Inf
func gainOf(s beep.Streamer, level float64) beep.Streamer {
	if level <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(level)}
}

// layer is one voice of a cue: a sweep between two pitches mixed at level
type layer struct {
	wave     Waveform
	from, to float64
	level    float64
}

// part mixes layers sharing one length and fade shape
func part(rate beep.SampleRate, d, attack, release time.Duration, layers ...layer) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(layers))
	for _, l := range layers {
		shaped := Shape(Sweep(l.from, l.to, d, l.wave, rate), d, attack, release, rate)
		voices = append(voices, gainOf(shaped, l.level))
	}
	return beep.Mix(voices...)
}

// cueLevel is the configured effect volume under the master volume
func cueLevel(cfg *AudioConfig, s SoundType) float64 {
	return cfg.EffectVolumes[s] * cfg.MasterVolume
}

// CreatePushSound is a falling saw grind over grit, for a wall sliding one cell
func CreatePushSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	slide := part(rate, constants.PushSoundDuration, constants.PushSoundAttack, constants.PushSoundRelease,
		layer{wave: WaveSaw, from: 110, to: 80, level: 0.7},
		layer{wave: WaveNoise, level: 0.2},
	)
	return gainOf(slide, cueLevel(cfg, SoundPush))
}

// CreateTumbleSound is a sine fall followed by a low thump and dust, for a wall dropping into a pit
func CreateTumbleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	fallTime := constants.TumbleSoundDuration / 2
	landTime := constants.TumbleSoundDuration - fallTime

	fall := part(rate, fallTime, constants.TumbleSoundAttack, fallTime/4,
		layer{wave: WaveSine, from: 440, to: 90, level: 0.6},
	)
	land := part(rate, landTime, constants.TumbleSoundAttack, constants.TumbleSoundRelease,
		layer{wave: WaveSine, from: 55, to: 55, level: 0.8},
		layer{wave: WaveNoise, level: 0.3},
	)
	return gainOf(beep.Seq(fall, land), cueLevel(cfg, SoundTumble))
}

// CreateBlockedSound is a short square thud against a wall that cannot move
func CreateBlockedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	thud := part(rate, constants.BlockedSoundDuration, constants.BlockedSoundAttack, constants.BlockedSoundRelease,
		layer{wave: WaveSquare, from: 60, to: 60, level: 1},
	)
	return gainOf(thud, cueLevel(cfg, SoundBlocked))
}

// CreateSound dispatches to the generator for s
func CreateSound(s SoundType, cfg *AudioConfig) beep.Streamer {
	switch s {
	case SoundPush:
		return CreatePushSound(cfg)
	case SoundTumble:
		return CreateTumbleSound(cfg)
	case SoundBlocked:
		return CreateBlockedSound(cfg)
	default:
		return nil
	}
}

package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/engine"
)

// SoundManager plays push cues through a beep mixer on the system speaker
// Every operation is a no-op until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
	log         *logrus.Entry
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig, log *logrus.Entry) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
		log:    log.WithField("component", "audio"),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	sampleRate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.WithField("rate", sm.config.SampleRate).Info("speaker initialized")
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// allow reports whether s may play at now, recording the play when it does
func (sm *SoundManager) allow(s SoundType, now time.Time) bool {
	if s < 0 || s >= soundTypeCount {
		return false
	}
	if now.Sub(sm.lastPlayed[s]) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[s] = now
	return true
}

// Play queues one cue on the mixer, returns false when dropped
func (sm *SoundManager) Play(s SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.allow(s, sm.now()) {
		return false
	}

	streamer := CreateSound(s, sm.config)
	if streamer == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// Update plays one cue per push outcome of the tick; registered in the render phase
func (sm *SoundManager) Update(ctx *engine.Context) {
	if ctx.IsMuted.Load() {
		return
	}
	for _, ev := range ctx.PushEvents {
		if s, ok := SoundForPush(ev.Result); ok {
			sm.Play(s)
		}
	}
}

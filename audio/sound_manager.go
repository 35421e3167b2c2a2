package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/olsujabu/snailgame/constants"
)

// SoundManager plays game feedback sounds through the beep speaker
// Satisfies events.Feedback; every call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played [soundTypeCount]atomic.Uint64
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio initialized: rate=%d master=%.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close that allows re-init, clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// IsInitialized reports whether the speaker is live
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences or restores effect playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns how many times a sound was requested while live
func (sm *SoundManager) Played(st SoundType) uint64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st].Load()
}

// Play queues a one-shot effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return
	}
	sm.played[st].Add(1)

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// OnCollect plays the pickup chirp
func (sm *SoundManager) OnCollect() { sm.Play(SoundCollect) }

// OnHit plays the damage thud
func (sm *SoundManager) OnHit() { sm.Play(SoundHit) }

// OnJump plays the jump boing
func (sm *SoundManager) OnJump() { sm.Play(SoundJump) }

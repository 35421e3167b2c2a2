package audio

import (
	"errors"
	"testing"

	"github.com/olsujabu/snailgame/events"
)

var _ events.Feedback = (*SoundManager)(nil)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.OnCollect()
	sm.OnHit()
	sm.OnJump()
	sm.Play(SoundType(99))
	sm.Cleanup()

	if sm.Played(SoundCollect) != 0 {
		t.Error("Expected no playback before initialization")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization fails in CI environments without audio devices, the game runs without audio
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.OnCollect()
	if sm.Played(SoundCollect) != 1 {
		t.Errorf("Expected one collect playback, got %d", sm.Played(SoundCollect))
	}
	sm.Cleanup()
	if sm.IsInitialized() {
		t.Error("Expected cleanup to release the manager")
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Expected disabled manager to stay uninitialized")
	}
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.IsMuted() {
		t.Fatal("Expected unmuted by default")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("Expected toggle to mute")
	}
	sm.SetMuted(false)
	if sm.IsMuted() {
		t.Error("Expected SetMuted(false) to unmute")
	}
}

func TestSoundTypeNames(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		parsed, ok := ParseSoundType(st.String())
		if !ok || parsed != st {
			t.Errorf("Expected %v to round-trip by name", st)
		}
	}
	if SoundType(-1).String() != "unknown" {
		t.Error("Expected unknown name for out-of-range sound")
	}
}

package audio

import (
	"errors"

	"github.com/olsujabu/snailgame/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCollect SoundType = iota // Mail pickup chirp
	SoundHit                      // Salt hit thud
	SoundJump                     // Jump boing
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"collect", "hit", "jump"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType resolves a sound name as used in SNAILMAIL_SFX_VOLUMES
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// AudioConfig holds output and mix settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundCollect: 0.8,
			SoundHit:     1.0,
			SoundJump:    0.6,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)

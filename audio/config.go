package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/olsujabu/snailgame/vmath"
)

// LoadAudioConfig loads audio configuration from environment variables
// Unparseable values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overlays SNAILMAIL_* audio variables onto cfg
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv("SNAILMAIL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 on the environment, 0.0-1.0 internally
	if volume := os.Getenv("SNAILMAIL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// Per-effect volumes as JSON, e.g. {"collect":0.5,"hit":1}
	if effectVols := os.Getenv("SNAILMAIL_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = vmath.Clamp(v, 0, 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv("SNAILMAIL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

package audio

import (
	"testing"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected default sample rate 48000, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %v to be set", st)
		}
	}
}

func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"maybe", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SNAILMAIL_AUDIO_ENABLED", tc.value)
			if cfg := LoadAudioConfig(); cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"75", 0.75},
		{"150", 1.0},
		{"-20", 0.0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SNAILMAIL_MASTER_VOLUME", tc.value)
			if cfg := LoadAudioConfig(); cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv("SNAILMAIL_SFX_VOLUMES", `{"collect":0.25,"jump":3,"unknown":0.1}`)
	cfg := LoadAudioConfig()

	if cfg.EffectVolumes[SoundCollect] != 0.25 {
		t.Errorf("Expected collect volume 0.25, got %f", cfg.EffectVolumes[SoundCollect])
	}
	if cfg.EffectVolumes[SoundJump] != 1 {
		t.Errorf("Expected jump volume clamped to 1, got %f", cfg.EffectVolumes[SoundJump])
	}
	if cfg.EffectVolumes[SoundHit] != 1.0 {
		t.Errorf("Expected hit volume unchanged, got %f", cfg.EffectVolumes[SoundHit])
	}
}

func TestLoadAudioConfigSampleRate(t *testing.T) {
	t.Setenv("SNAILMAIL_SAMPLE_RATE", "22050")
	if cfg := LoadAudioConfig(); cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}

	t.Setenv("SNAILMAIL_SAMPLE_RATE", "-1")
	if cfg := LoadAudioConfig(); cfg.SampleRate != 48000 {
		t.Errorf("Expected invalid sample rate ignored, got %d", cfg.SampleRate)
	}
}

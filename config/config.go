package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/olsujabu/snailgame/audio"
	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
)

// ErrInvalid is returned when a loaded configuration cannot be used
var ErrInvalid = errors.New("invalid config")

// Default locations, relative to the working directory
const (
	DefaultPath          = "snailmail.toml"
	DefaultEnvFile       = ".env"
	DefaultHighScoreFile = "snailmail.ini"
	DefaultHandAddr      = "127.0.0.1:8765"
)

// Config is the full runtime configuration
type Config struct {
	Game    engine.Tuning  `toml:"game"`
	Audio   AudioSection   `toml:"audio"`
	Input   InputSection   `toml:"input"`
	Network NetworkSection `toml:"network"`
	Storage StorageSection `toml:"storage"`
	Log     LogSection     `toml:"log"`

	// Seed drives item spawning; 0 picks one from the wall clock at startup
	Seed uint64 `toml:"seed"`
}

type AudioSection struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	Volumes      map[string]float64 `toml:"volumes"` // keyed by sound name: collect, hit, jump
}

type InputSection struct {
	HandControl bool              `toml:"hand_control"`
	Keys        map[string]string `toml:"keys"` // key name -> action name, merged over the defaults
}

type NetworkSection struct {
	Enabled bool   `toml:"enabled"`
	Listen  string `toml:"listen"`
}

type StorageSection struct {
	HighScoreFile string `toml:"high_score_file"`
}

type LogSection struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	volumes := make(map[string]float64, len(ac.EffectVolumes))
	for st, v := range ac.EffectVolumes {
		volumes[st.String()] = v
	}
	return &Config{
		Game: engine.DefaultTuning(),
		Audio: AudioSection{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			Volumes:      volumes,
		},
		Network: NetworkSection{
			Enabled: false,
			Listen:  DefaultHandAddr,
		},
		Storage: StorageSection{HighScoreFile: DefaultHighScoreFile},
		Log:     LogSection{Dir: constants.LogDir},
	}
}

// Load builds a Config from defaults, the TOML file at path, the .env file at envFile
// and SNAILMAIL_* environment variables, in increasing precedence
// Missing files are skipped; an empty path skips that layer entirely
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		// godotenv never overrides variables already set in the process environment
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: %s not found, using defaults", path)
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undecoded[0].String())
	}
	return nil
}

// ApplyEnv overlays SNAILMAIL_* variables; unparsable values are logged and ignored
// Audio variables are read later by audio.ApplyEnv through AudioConfig
func (c *Config) ApplyEnv() {
	if v, ok := envUint("SNAILMAIL_SEED"); ok {
		c.Seed = v
	}
	if v, ok := envBool("SNAILMAIL_DEBUG"); ok {
		c.Log.Debug = v
	}
	if v, ok := os.LookupEnv("SNAILMAIL_LOG_DIR"); ok && v != "" {
		c.Log.Dir = v
	}
	if v, ok := envBool("SNAILMAIL_HAND_CONTROL"); ok {
		c.Input.HandControl = v
	}
	if v, ok := os.LookupEnv("SNAILMAIL_HAND_ADDR"); ok && v != "" {
		c.Network.Listen = v
		c.Network.Enabled = true
	}
	if v, ok := os.LookupEnv("SNAILMAIL_HIGHSCORE_FILE"); ok && v != "" {
		c.Storage.HighScoreFile = v
	}
	if v, ok := envInt("SNAILMAIL_MAX_HEALTH"); ok {
		c.Game.MaxHealth = v
	}
	if v, ok := envFloat("SNAILMAIL_HAZARD_CHANCE"); ok {
		c.Game.HazardChance = v
	}
}

// Validate checks every section; tuning errors are wrapped with ErrInvalid
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("%w: [game]: %v", ErrInvalid, err)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: [audio] master_volume must be within [0, 1]", ErrInvalid)
	}
	for name, v := range c.Audio.Volumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: [audio.volumes] unknown sound %q", ErrInvalid, name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: [audio.volumes] %s must be within [0, 1]", ErrInvalid, name)
		}
	}
	if c.Network.Enabled && c.Network.Listen == "" {
		return fmt.Errorf("%w: [network] listen is required when enabled", ErrInvalid)
	}
	if c.Storage.HighScoreFile == "" {
		return fmt.Errorf("%w: [storage] high_score_file is empty", ErrInvalid)
	}
	return nil
}

// AudioConfig converts the [audio] section and applies audio environment overrides
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	for name, v := range c.Audio.Volumes {
		if st, ok := audio.ParseSoundType(name); ok {
			ac.EffectVolumes[st] = v
		}
	}
	audio.ApplyEnv(ac)
	return ac
}

func envBool(key string) (bool, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, raw, err)
		return false, false
	}
	return v, true
}

func envInt(key string) (int, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, raw, err)
		return 0, false
	}
	return v, true
}

func envUint(key string) (uint64, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, raw, err)
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, raw, err)
		return 0, false
	}
	return v, true
}

package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/olsujabu/snailgame/constants"
)

// ErrInvalidTuning is returned by Tuning.Validate
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant the simulation reads
// Loaded from the [game] section of the config file; zero fields are not allowed
type Tuning struct {
	LaneWidth                float64 `toml:"lane_width"`
	SpawnDistance            float64 `toml:"spawn_distance"`
	RetainLimit              float64 `toml:"retain_limit"`
	CollisionBandAhead       float64 `toml:"collision_band_ahead"`
	CollisionBandSpeedFactor float64 `toml:"collision_band_speed_factor"`
	CollisionRadius          float64 `toml:"collision_radius"`

	BaseSpeed      float64 `toml:"base_speed"`
	SpeedIncrement float64 `toml:"speed_increment"`
	SpeedScoreStep int     `toml:"speed_score_step"`

	BaseSpawnInterval time.Duration `toml:"base_spawn_interval"`
	MinSpawnInterval  time.Duration `toml:"min_spawn_interval"`
	SpawnIntervalStep time.Duration `toml:"spawn_interval_step"`
	SpawnScoreStep    int           `toml:"spawn_score_step"`
	HazardChance      float64       `toml:"hazard_chance"`

	MaxHealth       int           `toml:"max_health"`
	SaltDamage      int           `toml:"salt_damage"`
	MailScore       int           `toml:"mail_score"`
	ComboTimeout    time.Duration `toml:"combo_timeout"`
	ComboMultiplier float64       `toml:"combo_multiplier"`

	EffectLifetime   time.Duration `toml:"effect_lifetime"`
	HitFlashDuration time.Duration `toml:"hit_flash_duration"`
	ShakeDuration    time.Duration `toml:"shake_duration"`

	SteeringSpeed float64 `toml:"steering_speed"`
	GroundHeight  float64 `toml:"ground_height"`
	JumpClearance float64 `toml:"jump_clearance"`
	JumpVelocity  float64 `toml:"jump_velocity"`
	Gravity       float64 `toml:"gravity"`
}

// DefaultTuning returns the stock game balance
func DefaultTuning() Tuning {
	return Tuning{
		LaneWidth:                constants.LaneWidth,
		SpawnDistance:            constants.SpawnDistance,
		RetainLimit:              constants.RetainLimit,
		CollisionBandAhead:       constants.CollisionBandAhead,
		CollisionBandSpeedFactor: constants.CollisionBandSpeedFactor,
		CollisionRadius:          constants.CollisionRadius,

		BaseSpeed:      constants.BaseSpeed,
		SpeedIncrement: constants.SpeedIncrement,
		SpeedScoreStep: constants.SpeedScoreStep,

		BaseSpawnInterval: constants.BaseSpawnInterval,
		MinSpawnInterval:  constants.MinSpawnInterval,
		SpawnIntervalStep: constants.SpawnIntervalStep,
		SpawnScoreStep:    constants.SpawnScoreStep,
		HazardChance:      constants.HazardChance,

		MaxHealth:       constants.MaxHealth,
		SaltDamage:      constants.SaltDamage,
		MailScore:       constants.MailScore,
		ComboTimeout:    constants.ComboTimeout,
		ComboMultiplier: constants.ComboMultiplier,

		EffectLifetime:   constants.EffectLifetime,
		HitFlashDuration: constants.HitFlashDuration,
		ShakeDuration:    constants.ShakeDuration,

		SteeringSpeed: constants.SteeringSpeed,
		GroundHeight:  constants.GroundHeight,
		JumpClearance: constants.JumpClearance,
		JumpVelocity:  constants.JumpVelocity,
		Gravity:       constants.Gravity,
	}
}

// Validate rejects balances the simulation cannot run with
func (t Tuning) Validate() error {
	switch {
	case t.LaneWidth <= 0:
		return fmt.Errorf("%w: lane_width must be positive", ErrInvalidTuning)
	case t.SpawnDistance >= 0:
		return fmt.Errorf("%w: spawn_distance must be negative (ahead of the player)", ErrInvalidTuning)
	case t.RetainLimit <= t.CollisionBandAhead:
		return fmt.Errorf("%w: retain_limit must exceed collision_band_ahead", ErrInvalidTuning)
	case t.CollisionRadius <= 0:
		return fmt.Errorf("%w: collision_radius must be positive", ErrInvalidTuning)
	case t.BaseSpeed <= 0 || t.SpeedIncrement < 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidTuning)
	case t.SpeedScoreStep <= 0 || t.SpawnScoreStep <= 0:
		return fmt.Errorf("%w: score steps must be positive", ErrInvalidTuning)
	case t.MinSpawnInterval <= 0 || t.BaseSpawnInterval < t.MinSpawnInterval:
		return fmt.Errorf("%w: spawn intervals must satisfy 0 < min <= base", ErrInvalidTuning)
	case t.SpawnIntervalStep < 0:
		return fmt.Errorf("%w: spawn_interval_step must not be negative", ErrInvalidTuning)
	case t.HazardChance < 0 || t.HazardChance > 1:
		return fmt.Errorf("%w: hazard_chance must be within [0, 1]", ErrInvalidTuning)
	case t.MaxHealth <= 0 || t.SaltDamage <= 0:
		return fmt.Errorf("%w: max_health and salt_damage must be positive", ErrInvalidTuning)
	case t.MailScore <= 0 || t.ComboMultiplier < 0:
		return fmt.Errorf("%w: scoring values must be positive", ErrInvalidTuning)
	case t.ComboTimeout <= 0 || t.EffectLifetime <= 0:
		return fmt.Errorf("%w: combo_timeout and effect_lifetime must be positive", ErrInvalidTuning)
	case t.SteeringSpeed <= 0 || t.SteeringSpeed > 1:
		return fmt.Errorf("%w: steering_speed must be within (0, 1]", ErrInvalidTuning)
	case t.JumpVelocity < 0 || t.Gravity <= 0:
		return fmt.Errorf("%w: jump_velocity and gravity must be positive", ErrInvalidTuning)
	}
	return nil
}

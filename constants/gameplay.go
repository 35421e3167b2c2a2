package constants

import "time"

// Lane geometry
const (
	// LaneWidth is the full lateral width of the road the player steers within
	LaneWidth = 8.0

	// SpawnDistance is the forward distance new items start at (ahead of the player)
	SpawnDistance = -100.0

	// RetainLimit is the forward distance past which items are discarded
	RetainLimit = 10.0

	// CollisionBandAhead is the leading edge of the collision band
	CollisionBandAhead = 3.0

	// CollisionBandSpeedFactor scales the trailing edge of the collision band by current speed
	CollisionBandSpeedFactor = 2.0

	// CollisionRadius is the planar distance under which an item touches the player
	CollisionRadius = 1.0
)

// Speed Curve
const (
	// BaseSpeed is the forward distance items travel per tick at score 0
	BaseSpeed = 0.4

	// SpeedIncrement is added to speed for every SpeedScoreStep points
	SpeedIncrement = 0.02

	// SpeedScoreStep is the score bracket size for speed increases
	SpeedScoreStep = 1000
)

// Spawn Curve
const (
	BaseSpawnInterval = 500 * time.Millisecond
	MinSpawnInterval  = 200 * time.Millisecond

	// SpawnIntervalStep is removed from the interval for every SpawnScoreStep points
	SpawnIntervalStep = 50 * time.Millisecond
	SpawnScoreStep    = 500

	// HazardChance is the probability a spawned item is a hazard
	HazardChance = 0.35
)

// Health and Scoring
const (
	MaxHealth  = 100
	SaltDamage = 20
	MailScore  = 100

	// ComboTimeout is the window in which consecutive pickups extend the streak
	ComboTimeout = 2 * time.Second

	// ComboMultiplier scales the combo bonus: bonus = floor(MailScore * combo * ComboMultiplier)
	ComboMultiplier = 0.5
)

// Feedback Timing
const (
	// EffectLifetime is how long collection bursts and score popups stay active
	EffectLifetime = 1500 * time.Millisecond

	// HitFlashDuration is how long the hit reaction flag stays raised
	HitFlashDuration = 300 * time.Millisecond

	// ShakeDuration is how long the camera shake marker stays raised after a hit
	ShakeDuration = 500 * time.Millisecond
)

// Player Kinematics
const (
	// SteeringSpeed is the per-tick lerp factor toward the steering target
	SteeringSpeed = 0.25

	// GroundHeight is the resting elevation of the player
	GroundHeight = 0.5

	// JumpClearance is the elevation above which hazards pass underneath
	JumpClearance = 1.5

	// JumpVelocity is the initial upward velocity per tick
	JumpVelocity = 0.2

	// Gravity is subtracted from vertical velocity every tick
	Gravity = 0.01

	// BobAmplitude and BobFrequency shape the idle crawl bob
	BobAmplitude = 0.05
	BobFrequency = 15.0
)

// Input
const (
	// NudgeStep is the steering delta applied per left/right key press
	NudgeStep = 0.1
)

// Effect Placement
const (
	// BurstHeight is the elevation of collection and hazard bursts
	BurstHeight = 0.5

	// PopupHeight is the elevation score popups start rising from
	PopupHeight = 1.0
)

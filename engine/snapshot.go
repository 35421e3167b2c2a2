package engine

import "time"

// PlayerView is the player transform as drawn
type PlayerView struct {
	X, Y     float64
	Tilt     float64
	Airborne bool
}

// Snapshot is an immutable copy of everything the renderer reads for one frame
// Published by the scheduler through an atomic pointer; never mutated after publish
type Snapshot struct {
	State     SessionState
	Score     int
	BestScore int
	Health    int
	MaxHealth int
	Combo     int

	Speed         float64
	SpawnInterval time.Duration

	Items   []Item
	Effects []Effect
	Player  PlayerView

	HitFlash bool
	Shake    bool

	Now            float64
	Tick           uint64
	EffectLifetime float64
	LaneWidth      float64
	SpawnDistance  float64
	RetainLimit    float64
	GroundHeight   float64

	HandControl bool
	Steering    float64

	Metrics string // status.Registry summary, shown in debug mode
}

// HealthFraction returns health as a fraction of max in [0, 1]
func (s *Snapshot) HealthFraction() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return float64(s.Health) / float64(s.MaxHealth)
}

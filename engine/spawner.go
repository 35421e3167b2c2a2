package engine

import (
	"time"

	"github.com/olsujabu/snailgame/vmath"
)

// Spawner emits items on a score-dependent interval
// Driven by the simulation tick so spawning and collision share one timeline
type Spawner struct {
	tuning Tuning
	rng    vmath.Source

	interval time.Duration // Currently armed interval, 0 = unarmed
	elapsed  time.Duration // Time accumulated since last spawn or re-arm
	nextID   uint64
}

// NewSpawner creates a spawner drawing kinds and offsets from rng
func NewSpawner(t Tuning, rng vmath.Source) *Spawner {
	return &Spawner{
		tuning: t,
		rng:    rng,
	}
}

// Step advances the spawn timer by dt at the given score and appends new items to dst
// The interval is recomputed every step; a changed interval re-arms the timer from zero
func (sp *Spawner) Step(dt time.Duration, score int, dst []Item) []Item {
	interval := SpawnInterval(sp.tuning, score)
	if interval != sp.interval {
		sp.interval = interval
		sp.elapsed = 0
	}

	sp.elapsed += dt
	for sp.elapsed >= sp.interval {
		sp.elapsed -= sp.interval
		dst = append(dst, sp.spawn())
	}
	return dst
}

// spawn creates one item: weighted kind, uniform lateral offset, far forward distance
func (sp *Spawner) spawn() Item {
	sp.nextID++
	kind := KindCollectible
	if sp.rng.Float64() < sp.tuning.HazardChance {
		kind = KindHazard
	}
	return Item{
		ID:   sp.nextID,
		Kind: kind,
		X:    (sp.rng.Float64() - 0.5) * sp.tuning.LaneWidth,
		Z:    sp.tuning.SpawnDistance,
	}
}

// Interval returns the currently armed interval
func (sp *Spawner) Interval() time.Duration {
	return sp.interval
}

// Reset disarms the timer; item IDs keep increasing across sessions
func (sp *Spawner) Reset() {
	sp.interval = 0
	sp.elapsed = 0
}

package engine

import (
	"fmt"
	"time"

	"github.com/olsujabu/snailgame/engine/fsm"
	"github.com/olsujabu/snailgame/events"
	"github.com/olsujabu/snailgame/vmath"
)

// TickInput is the presentation-owned player transform sampled for one tick
type TickInput struct {
	PlayerX float64 // Lateral position
	PlayerY float64 // Elevation; above JumpClearance hazards pass underneath
}

// Delta summarizes what a single tick changed
type Delta struct {
	Tick           uint64
	Advanced       int
	Collected      int
	Hits           int
	Cleared        int // Hazards inside the band passed over by a jump
	Spawned        int
	Discarded      int // Items dropped past RetainLimit
	EffectsExpired int
	ScoreGained    int
	HealthLost     int
	GameOver       bool
}

// Simulation is the single owner of session state: items, score, health, combo, effects
// Not safe for concurrent use; the scheduler goroutine is the only writer
type Simulation struct {
	tuning  Tuning
	queue   *events.EventQueue
	machine *fsm.Machine[*Simulation]
	spawner *Spawner
	effects *EffectSet
	combo   Combo

	items  []Item
	score  int
	health int

	now  float64 // Game seconds, advanced only while playing
	tick uint64

	hitUntil   float64
	shakeUntil float64

	lastX, lastY float64 // Last finite player transform
	lastState    string
}

// NewSimulation creates a session in the playing state
// A nil rng seeds a FastRand from the wall clock; a nil queue allocates a private one
func NewSimulation(t Tuning, rng vmath.Source, queue *events.EventQueue) (*Simulation, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if queue == nil {
		queue = events.NewEventQueue()
	}

	s := &Simulation{
		tuning:  t,
		queue:   queue,
		spawner: NewSpawner(t, rng),
		effects: NewEffectSet(t.EffectLifetime.Seconds()),
		items:   make([]Item, 0, 64),
		health:  t.MaxHealth,
		lastY:   t.GroundHeight,
	}

	machine, err := newSessionMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to load session graph: %w", err)
	}
	s.machine = machine
	if err := s.machine.Init(s); err != nil {
		return nil, fmt.Errorf("failed to init session graph: %w", err)
	}
	return s, nil
}

// Tick advances the session by dt using the sampled player transform
// Total for any input: outside playing it is a no-op, non-finite coordinates reuse the last finite ones
func (s *Simulation) Tick(dt time.Duration, in TickInput) Delta {
	d := Delta{Tick: s.tick}
	if s.State() != StatePlaying {
		return d
	}
	if dt < 0 {
		dt = 0
	}

	s.tick++
	d.Tick = s.tick
	s.now += dt.Seconds()
	s.machine.Update(dt)

	if vmath.IsFinite(in.PlayerX) {
		s.lastX = in.PlayerX
	}
	if vmath.IsFinite(in.PlayerY) {
		s.lastY = in.PlayerY
	}

	s.advanceAndCollide(Speed(s.tuning, s.score), s.lastX, s.lastY, &d)
	d.EffectsExpired = s.effects.Expire(s.now)

	if s.State() == StatePlaying {
		before := len(s.items)
		s.items = s.spawner.Step(dt, s.score, s.items)
		d.Spawned = len(s.items) - before
	}
	return d
}

// Pause moves playing to paused; false if not playing
func (s *Simulation) Pause() bool {
	return s.machine.Fire(s, TriggerPause)
}

// Resume moves paused to playing; false if not paused
func (s *Simulation) Resume() bool {
	return s.machine.Fire(s, TriggerResume)
}

// TogglePause flips between playing and paused; game over is unaffected
func (s *Simulation) TogglePause() bool {
	switch s.State() {
	case StatePlaying:
		return s.Pause()
	case StatePaused:
		return s.Resume()
	}
	return false
}

// Restart re-initializes the session from game over; false in any other state
func (s *Simulation) Restart() bool {
	return s.machine.Fire(s, TriggerRestart)
}

// NotifyJump publishes a jump event; ignored outside playing
func (s *Simulation) NotifyJump() {
	if s.State() != StatePlaying {
		return
	}
	s.emit(events.EventJump, nil)
}

// resetSession restores initial values; run on exit from game over
func (s *Simulation) resetSession() {
	s.score = 0
	s.health = s.tuning.MaxHealth
	s.combo.Reset()
	clear(s.items)
	s.items = s.items[:0]
	s.effects.Clear()
	s.spawner.Reset()
	s.hitUntil = 0
	s.shakeUntil = 0
	s.lastX = 0
	s.lastY = s.tuning.GroundHeight
}

func (s *Simulation) emit(t events.EventType, payload any) {
	s.queue.Push(events.GameEvent{
		Type:    t,
		Payload: payload,
		Tick:    s.tick,
		At:      s.now,
		Created: time.Now(),
	})
}

// --- Accessors ---

func (s *Simulation) State() SessionState { return sessionStateOf(s.machine) }
func (s *Simulation) Score() int          { return s.score }
func (s *Simulation) Health() int         { return s.health }
func (s *Simulation) Combo() int          { return s.combo.Value() }
func (s *Simulation) Now() float64        { return s.now }
func (s *Simulation) TickCount() uint64   { return s.tick }
func (s *Simulation) Tuning() Tuning      { return s.tuning }

// Speed returns the current per-tick forward speed
func (s *Simulation) Speed() float64 {
	return Speed(s.tuning, s.score)
}

// Items returns a copy of the live items
func (s *Simulation) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Effects returns a copy of the live effects
func (s *Simulation) Effects() []Effect {
	return s.effects.Active()
}

// HitActive reports whether the hit reaction flag is raised
func (s *Simulation) HitActive() bool {
	return s.now < s.hitUntil
}

// ShakeActive reports whether the camera shake marker is raised
func (s *Simulation) ShakeActive() bool {
	return s.now < s.shakeUntil
}

// TimeInState returns game time spent in the current session state
func (s *Simulation) TimeInState() time.Duration {
	return s.machine.TimeInState()
}

// Snapshot copies the presentation-facing state; player and HUD extras are filled by the scheduler
func (s *Simulation) Snapshot() *Snapshot {
	return &Snapshot{
		State:          s.State(),
		Score:          s.score,
		Health:         s.health,
		MaxHealth:      s.tuning.MaxHealth,
		Combo:          s.combo.Value(),
		Speed:          s.Speed(),
		SpawnInterval:  SpawnInterval(s.tuning, s.score),
		Items:          s.Items(),
		Effects:        s.Effects(),
		HitFlash:       s.HitActive(),
		Shake:          s.ShakeActive(),
		Now:            s.now,
		Tick:           s.tick,
		EffectLifetime: s.tuning.EffectLifetime.Seconds(),
		LaneWidth:      s.tuning.LaneWidth,
		SpawnDistance:  s.tuning.SpawnDistance,
		RetainLimit:    s.tuning.RetainLimit,
		GroundHeight:   s.tuning.GroundHeight,
	}
}

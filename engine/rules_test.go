package engine

import (
	"errors"
	"testing"
	"time"
)

func TestSpeedCurve(t *testing.T) {
	tn := DefaultTuning()
	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.4},
		{999, 0.4},
		{1000, 0.42},
		{2500, 0.44},
		{-50, 0.4},
	}
	for _, tt := range tests {
		got := Speed(tn, tt.score)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Speed(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestSpawnIntervalCurve(t *testing.T) {
	tn := DefaultTuning()
	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 500 * time.Millisecond},
		{499, 500 * time.Millisecond},
		{500, 450 * time.Millisecond},
		{2000, 300 * time.Millisecond},
		{3000, 200 * time.Millisecond},
		{100000, 200 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tn, tt.score); got != tt.want {
			t.Errorf("SpawnInterval(%d) = %v, want %v", tt.score, got, tt.want)
		}
		if again := SpawnInterval(tn, tt.score); again != SpawnInterval(tn, tt.score) {
			t.Errorf("SpawnInterval(%d) not deterministic", tt.score)
		}
	}
}

func TestComboTracker(t *testing.T) {
	var c Combo
	if c.Value() != 0 {
		t.Fatalf("Expected fresh combo 0, got %d", c.Value())
	}

	steps := []struct {
		name  string
		apply func() int
		want  int
	}{
		{"first pickup", func() int { return c.Pickup(0, 2) }, 1},
		{"within window", func() int { return c.Pickup(0.5, 2) }, 2},
		{"within window again", func() int { return c.Pickup(2.4, 2) }, 3},
		{"gap equal to timeout", func() int { return c.Pickup(4.4, 2) }, 1},
		{"break", func() int { c.Break(); return c.Value() }, 0},
		{"pickup after break", func() int { return c.Pickup(4.5, 2) }, 1},
		{"reset", func() int { c.Reset(); return c.Value() }, 0},
		{"pickup after reset", func() int { return c.Pickup(4.6, 2) }, 1},
	}
	for _, s := range steps {
		if got := s.apply(); got != s.want {
			t.Errorf("%s: got %d, want %d", s.name, got, s.want)
		}
	}
}

func TestEffectSetExpiry(t *testing.T) {
	set := NewEffectSet(1.5)
	a := set.Add(EffectCollect, 0, 0.5, 0, 0, 0)
	b := set.Add(EffectPopup, 0, 1, 0, 150, 1.0)
	if a == b {
		t.Fatal("Expected unique effect IDs")
	}

	if n := set.Expire(1.4); n != 0 || set.Len() != 2 {
		t.Fatalf("Expected nothing expired at 1.4, removed %d", n)
	}
	if n := set.Expire(1.5); n != 1 || set.Len() != 1 {
		t.Fatalf("Expected first effect expired at its lifetime, removed %d", n)
	}
	active := set.Active()
	if active[0].ID != b || active[0].Value != 150 {
		t.Errorf("Expected popup to survive, got %+v", active[0])
	}

	active[0].Value = 0
	if set.Active()[0].Value != 150 {
		t.Error("Expected Active to return a copy")
	}

	set.Clear()
	if set.Len() != 0 {
		t.Error("Expected empty set after Clear")
	}
	if c := set.Add(EffectHazard, 0, 0, 0, 0, 5); c <= b {
		t.Error("Expected IDs to keep increasing after Clear")
	}
}

func TestSpawnerKindAndPosition(t *testing.T) {
	tn := DefaultTuning()
	sp := NewSpawner(tn, &scriptedSource{values: []float64{0.1, 0.5, 0.8, 0.0}})

	items := sp.Step(500*time.Millisecond, 0, nil)
	if len(items) != 1 {
		t.Fatalf("Expected one spawn, got %d", len(items))
	}
	if items[0].Kind != KindHazard || items[0].X != 0 || items[0].Z != tn.SpawnDistance {
		t.Errorf("Unexpected hazard %+v", items[0])
	}

	items = sp.Step(500*time.Millisecond, 0, items)
	if len(items) != 2 {
		t.Fatalf("Expected second spawn, got %d", len(items))
	}
	if items[1].Kind != KindCollectible || items[1].X != -tn.LaneWidth/2 {
		t.Errorf("Unexpected collectible %+v", items[1])
	}
	if items[0].ID == items[1].ID {
		t.Error("Expected unique item IDs")
	}
}

func TestSpawnerRearmsOnIntervalChange(t *testing.T) {
	sp := NewSpawner(DefaultTuning(), &scriptedSource{values: []float64{0.9, 0.5}})

	if items := sp.Step(250*time.Millisecond, 0, nil); len(items) != 0 {
		t.Fatalf("Expected no spawn before interval, got %d", len(items))
	}
	// Score crosses 500: interval drops to 450ms and the timer restarts
	if items := sp.Step(250*time.Millisecond, 500, nil); len(items) != 0 {
		t.Fatalf("Expected re-armed timer to discard accumulated time, got %d", len(items))
	}
	if sp.Interval() != 450*time.Millisecond {
		t.Errorf("Expected armed interval 450ms, got %v", sp.Interval())
	}
	if items := sp.Step(200*time.Millisecond, 500, nil); len(items) != 1 {
		t.Errorf("Expected spawn at 450ms, got %d", len(items))
	}
}

func TestSpawnerLongStepSpawnsMultiple(t *testing.T) {
	sp := NewSpawner(DefaultTuning(), &scriptedSource{values: []float64{0.9, 0.5}})
	if items := sp.Step(1600*time.Millisecond, 0, nil); len(items) != 3 {
		t.Errorf("Expected 3 spawns in 1.6s, got %d", len(items))
	}
}

func TestTuningValidate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("Expected default tuning to be valid, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero lane", func(tn *Tuning) { tn.LaneWidth = 0 }},
		{"spawn behind", func(tn *Tuning) { tn.SpawnDistance = 5 }},
		{"min above base", func(tn *Tuning) { tn.MinSpawnInterval = time.Second }},
		{"hazard chance", func(tn *Tuning) { tn.HazardChance = 1.5 }},
		{"zero damage", func(tn *Tuning) { tn.SaltDamage = 0 }},
		{"zero score step", func(tn *Tuning) { tn.SpeedScoreStep = 0 }},
		{"steering", func(tn *Tuning) { tn.SteeringSpeed = 2 }},
	}
	for _, tt := range tests {
		tn := DefaultTuning()
		tt.mutate(&tn)
		if err := tn.Validate(); !errors.Is(err, ErrInvalidTuning) {
			t.Errorf("%s: expected ErrInvalidTuning, got %v", tt.name, err)
		}
	}
}

func TestPlayerSteeringAndJump(t *testing.T) {
	tn := DefaultTuning()
	p := NewPlayer(tn)

	for i := 0; i < 60; i++ {
		p.Update(frame, 1, false)
	}
	if p.X < 3.99 || p.X > 4.0 {
		t.Errorf("Expected player near lane edge 4, got %v", p.X)
	}
	if p.Y() >= tn.JumpClearance {
		t.Errorf("Expected grounded elevation below clearance, got %v", p.Y())
	}

	if !p.Update(frame, 1, true) {
		t.Fatal("Expected jump to start")
	}
	if p.Update(frame, 1, true) {
		t.Error("Expected no double jump while airborne")
	}

	peak := 0.0
	landed := false
	for i := 0; i < 100; i++ {
		p.Update(frame, 1, false)
		peak = max(peak, p.Y())
		if !p.Airborne() {
			landed = true
			break
		}
	}
	if peak <= tn.JumpClearance {
		t.Errorf("Expected jump apex above clearance, got %v", peak)
	}
	if !landed {
		t.Error("Expected player to land")
	}

	p.Update(frame, 5, false)
	if p.X > 4.0 {
		t.Errorf("Expected steering clamp to keep player in lane, got %v", p.X)
	}

	p.Reset()
	if v := p.View(); v.X != 0 || v.Airborne {
		t.Errorf("Expected reset player at center, got %+v", v)
	}
}

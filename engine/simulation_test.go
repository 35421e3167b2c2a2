package engine

import (
	"math"
	"testing"
	"time"

	"github.com/olsujabu/snailgame/events"
	"github.com/olsujabu/snailgame/vmath"
)

const frame = 16 * time.Millisecond

// scriptedSource replays fixed draws, cycling when exhausted
type scriptedSource struct {
	values []float64
	pos    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func newTestSim(t *testing.T) (*Simulation, *events.EventQueue) {
	t.Helper()
	queue := events.NewEventQueue()
	// Collectibles far to the side so spawns never interfere with placed items
	sim, err := NewSimulation(DefaultTuning(), &scriptedSource{values: []float64{0.9, 0.99}}, queue)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	return sim, queue
}

// place puts an item that reaches the player after the next advance at base speed
func place(sim *Simulation, kind ItemKind, x float64) uint64 {
	id := uint64(1_000_000 + len(sim.items))
	sim.items = append(sim.items, Item{ID: id, Kind: kind, X: x, Z: -sim.Speed()})
	return id
}

var grounded = TickInput{PlayerX: 0, PlayerY: 0.5}

func countEvents(evs []events.GameEvent, typ events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func TestScenarioFirstPickupAwardsComboOne(t *testing.T) {
	sim, queue := newTestSim(t)
	place(sim, KindCollectible, 0)

	d := sim.Tick(frame, grounded)

	if d.Collected != 1 || d.ScoreGained != 150 {
		t.Fatalf("Expected one pickup worth 150, got %+v", d)
	}
	if sim.Score() != 150 {
		t.Errorf("Expected score 150, got %d", sim.Score())
	}
	if sim.Combo() != 1 {
		t.Errorf("Expected combo 1, got %d", sim.Combo())
	}
	if len(sim.Items()) != 0 {
		t.Errorf("Expected collected item to be removed, got %d items", len(sim.Items()))
	}

	effects := sim.Effects()
	if len(effects) != 2 {
		t.Fatalf("Expected burst and popup effects, got %d", len(effects))
	}
	if effects[1].Kind != EffectPopup || effects[1].Value != 150 {
		t.Errorf("Expected popup showing 150, got %+v", effects[1])
	}

	evs := queue.Consume()
	if countEvents(evs, events.EventCollect) != 1 {
		t.Fatalf("Expected one collect event, got %v", evs)
	}
	p := evs[0].Payload.(*events.CollectPayload)
	if p.Points != 150 || p.Combo != 1 || p.Score != 150 {
		t.Errorf("Unexpected collect payload %+v", p)
	}
}

func TestScenarioSecondPickupWithinWindow(t *testing.T) {
	sim, _ := newTestSim(t)
	place(sim, KindCollectible, 0)
	sim.Tick(frame, grounded)

	place(sim, KindCollectible, 0)
	d := sim.Tick(500*time.Millisecond, grounded)

	if sim.Combo() != 2 {
		t.Errorf("Expected combo 2, got %d", sim.Combo())
	}
	if d.ScoreGained != 200 {
		t.Errorf("Expected 200 points, got %d", d.ScoreGained)
	}
	if sim.Score() != 350 {
		t.Errorf("Expected score 350, got %d", sim.Score())
	}
}

func TestPickupAfterTimeoutRestartsCombo(t *testing.T) {
	sim, _ := newTestSim(t)
	place(sim, KindCollectible, 0)
	sim.Tick(frame, grounded)
	place(sim, KindCollectible, 0)
	sim.Tick(frame, grounded)
	if sim.Combo() != 2 {
		t.Fatalf("Expected combo 2, got %d", sim.Combo())
	}

	// Idle well past the window; combo is not decayed until the next pickup
	for i := 0; i < 30; i++ {
		sim.Tick(100*time.Millisecond, TickInput{PlayerX: 100, PlayerY: 0.5})
	}
	if sim.Combo() != 2 {
		t.Errorf("Expected lazy decay to keep combo 2 while idle, got %d", sim.Combo())
	}

	sim.items = sim.items[:0]
	place(sim, KindCollectible, 0)
	d := sim.Tick(frame, grounded)
	if sim.Combo() != 1 {
		t.Errorf("Expected combo reset to 1, got %d", sim.Combo())
	}
	if d.ScoreGained != 150 {
		t.Errorf("Expected 150 points, got %d", d.ScoreGained)
	}
}

func TestScenarioLethalHit(t *testing.T) {
	sim, queue := newTestSim(t)
	place(sim, KindCollectible, 0)
	sim.Tick(frame, grounded)
	queue.Clear()

	sim.health = 20
	place(sim, KindHazard, 0)
	d := sim.Tick(frame, grounded)

	if sim.Health() != 0 {
		t.Errorf("Expected health 0, got %d", sim.Health())
	}
	if sim.State() != StateGameOver {
		t.Errorf("Expected game over, got %v", sim.State())
	}
	if sim.Combo() != 0 {
		t.Errorf("Expected combo 0, got %d", sim.Combo())
	}
	if !d.GameOver || d.Hits != 1 || d.HealthLost != 20 {
		t.Errorf("Unexpected delta %+v", d)
	}

	evs := queue.Consume()
	want := []events.EventType{events.EventHit, events.EventStateChange, events.EventGameOver}
	if len(evs) != len(want) {
		t.Fatalf("Expected %d events, got %v", len(want), evs)
	}
	for i, typ := range want {
		if evs[i].Type != typ {
			t.Errorf("Event %d: expected %v, got %v", i, typ, evs[i].Type)
		}
	}
	if p := evs[2].Payload.(*events.GameOverPayload); p.Score != 150 {
		t.Errorf("Expected final score 150, got %d", p.Score)
	}

	// Terminal until restart
	score := sim.Score()
	place(sim, KindCollectible, 0)
	for i := 0; i < 10; i++ {
		if d := sim.Tick(frame, grounded); d.Advanced != 0 {
			t.Fatalf("Expected no-op tick in game over, got %+v", d)
		}
	}
	if sim.Score() != score || sim.State() != StateGameOver {
		t.Errorf("Expected frozen game over session")
	}
	if sim.Resume() || sim.Pause() {
		t.Error("Expected resume and pause to be rejected in game over")
	}
}

func TestScenarioJumpClearsHazard(t *testing.T) {
	sim, queue := newTestSim(t)
	id := place(sim, KindHazard, 0)
	airborne := TickInput{PlayerX: 0, PlayerY: 2.0}

	d := sim.Tick(frame, airborne)

	if sim.Health() != 100 {
		t.Errorf("Expected health unchanged, got %d", sim.Health())
	}
	if d.Cleared != 1 {
		t.Errorf("Expected hazard cleared, got %+v", d)
	}
	found := false
	for _, it := range sim.Items() {
		if it.ID == id {
			found = true
		}
	}
	if !found {
		t.Error("Expected cleared hazard to remain live")
	}

	// Still airborne on later ticks: no damage while it drifts out
	for i := 0; i < 40; i++ {
		sim.Tick(frame, airborne)
	}
	if sim.Health() != 100 {
		t.Errorf("Expected no damage on later ticks, got %d", sim.Health())
	}
	for _, it := range sim.Items() {
		if it.ID == id {
			t.Error("Expected hazard discarded past retain limit")
		}
	}
	if n := countEvents(queue.Consume(), events.EventHit); n != 0 {
		t.Errorf("Expected no hit events, got %d", n)
	}
}

func TestScenarioRestartResetsSession(t *testing.T) {
	sim, _ := newTestSim(t)
	if sim.Restart() {
		t.Fatal("Expected restart to be rejected while playing")
	}

	place(sim, KindCollectible, 0)
	sim.Tick(frame, grounded)
	sim.health = 20
	place(sim, KindHazard, 0)
	place(sim, KindCollectible, 3)
	sim.Tick(frame, grounded)
	if sim.State() != StateGameOver {
		t.Fatalf("Expected game over, got %v", sim.State())
	}

	if !sim.Restart() {
		t.Fatal("Expected restart from game over")
	}
	if sim.State() != StatePlaying {
		t.Errorf("Expected playing, got %v", sim.State())
	}
	if sim.Score() != 0 || sim.Health() != 100 || sim.Combo() != 0 {
		t.Errorf("Expected (0, 100, 0), got (%d, %d, %d)", sim.Score(), sim.Health(), sim.Combo())
	}
	if len(sim.Items()) != 0 || len(sim.Effects()) != 0 {
		t.Errorf("Expected empty items and effects, got %d and %d", len(sim.Items()), len(sim.Effects()))
	}
	if sim.HitActive() || sim.ShakeActive() {
		t.Error("Expected hit feedback cleared")
	}
}

func TestPauseFreezesSession(t *testing.T) {
	sim, _ := newTestSim(t)
	for i := 0; i < 40; i++ {
		sim.Tick(frame, TickInput{PlayerX: 100, PlayerY: 0.5})
	}
	if !sim.Pause() {
		t.Fatal("Expected pause from playing")
	}
	if sim.Pause() {
		t.Error("Expected second pause to be a no-op")
	}

	items := sim.Items()
	now, score := sim.Now(), sim.Score()
	for i := 0; i < 100; i++ {
		sim.Tick(frame, grounded)
	}
	if sim.Now() != now || sim.Score() != score {
		t.Error("Expected time and score frozen while paused")
	}
	after := sim.Items()
	if len(after) != len(items) {
		t.Fatalf("Expected %d items, got %d", len(items), len(after))
	}
	for i := range items {
		if items[i] != after[i] {
			t.Errorf("Item %d moved while paused", i)
		}
	}

	if !sim.TogglePause() || sim.State() != StatePlaying {
		t.Error("Expected toggle to resume")
	}
}

func TestOverlappingItemsResolveInSameTick(t *testing.T) {
	sim, _ := newTestSim(t)
	place(sim, KindCollectible, 0)
	place(sim, KindCollectible, 0.2)
	place(sim, KindHazard, -0.2)

	d := sim.Tick(frame, grounded)

	if d.Collected != 2 || d.Hits != 1 {
		t.Fatalf("Expected 2 pickups and 1 hit, got %+v", d)
	}
	// 150 + 200, then the hazard breaks the streak
	if sim.Score() != 350 || sim.Combo() != 0 || sim.Health() != 80 {
		t.Errorf("Unexpected state score=%d combo=%d health=%d", sim.Score(), sim.Combo(), sim.Health())
	}
}

func TestNonFiniteInputKeepsLastTransform(t *testing.T) {
	sim, _ := newTestSim(t)
	sim.Tick(frame, TickInput{PlayerX: 2, PlayerY: 0.5})

	sim.items = append(sim.items, Item{ID: 1, Kind: KindCollectible, X: 2, Z: -sim.Speed()})
	nan := math.NaN()
	d := sim.Tick(frame, TickInput{PlayerX: nan, PlayerY: nan})

	if d.Collected != 1 {
		t.Errorf("Expected pickup at last finite position, got %+v", d)
	}
}

func TestHitFeedbackWindows(t *testing.T) {
	sim, _ := newTestSim(t)
	place(sim, KindHazard, 0)
	sim.Tick(frame, grounded)

	if !sim.HitActive() || !sim.ShakeActive() {
		t.Fatal("Expected hit flash and shake after a hit")
	}
	sim.Tick(400*time.Millisecond, TickInput{PlayerX: 100, PlayerY: 0.5})
	if sim.HitActive() {
		t.Error("Expected hit flash to end")
	}
	if !sim.ShakeActive() {
		t.Error("Expected shake to outlast hit flash")
	}
	sim.Tick(200*time.Millisecond, TickInput{PlayerX: 100, PlayerY: 0.5})
	if sim.ShakeActive() {
		t.Error("Expected shake to end")
	}
}

func TestEffectsExpireAfterLifetime(t *testing.T) {
	sim, _ := newTestSim(t)
	place(sim, KindCollectible, 0)
	sim.Tick(frame, grounded)

	away := TickInput{PlayerX: 100, PlayerY: 0.5}
	sim.Tick(time.Second, away)
	if n := len(sim.Effects()); n != 2 {
		t.Fatalf("Expected effects alive at 1s, got %d", n)
	}
	d := sim.Tick(600*time.Millisecond, away)
	if n := len(sim.Effects()); n != 0 {
		t.Errorf("Expected effects expired past lifetime, got %d", n)
	}
	if d.EffectsExpired != 2 {
		t.Errorf("Expected 2 expirations, got %d", d.EffectsExpired)
	}
}

func TestSessionInvariantsUnderRandomPlay(t *testing.T) {
	sim, err := NewSimulation(DefaultTuning(), vmath.NewFastRand(7), nil)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	rng := vmath.NewFastRand(99)

	prevScore := 0
	for i := 0; i < 20000; i++ {
		in := TickInput{PlayerX: (rng.Float64() - 0.5) * 8, PlayerY: 0.5}
		if rng.Intn(10) == 0 {
			in.PlayerY = 2
		}
		state := sim.State()
		d := sim.Tick(frame, in)

		if h := sim.Health(); h < 0 || h > 100 {
			t.Fatalf("Health out of bounds: %d", h)
		}
		if sim.Health() == 0 && sim.State() != StateGameOver {
			t.Fatalf("Health 0 without game over at tick %d", i)
		}
		if sim.Combo() < 0 {
			t.Fatalf("Negative combo %d", sim.Combo())
		}
		if sim.Score() < prevScore {
			t.Fatalf("Score decreased from %d to %d", prevScore, sim.Score())
		}
		if state != StatePlaying && sim.Score() != prevScore {
			t.Fatalf("Score changed outside playing")
		}
		if d.GameOver {
			sim.Restart()
			prevScore = 0
			continue
		}
		prevScore = sim.Score()
	}
}

func TestSpawnDeterminism(t *testing.T) {
	run := func() []Item {
		sim, err := NewSimulation(DefaultTuning(), vmath.NewFastRand(42), nil)
		if err != nil {
			t.Fatalf("NewSimulation failed: %v", err)
		}
		for i := 0; i < 300; i++ {
			sim.Tick(frame, TickInput{PlayerX: 100, PlayerY: 0.5})
		}
		return sim.Items()
	}

	a, b := run(), run()
	if len(a) == 0 {
		t.Fatal("Expected spawned items")
	}
	if len(a) != len(b) {
		t.Fatalf("Expected equal item counts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Item %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNewSimulationRejectsInvalidTuning(t *testing.T) {
	tn := DefaultTuning()
	tn.MaxHealth = 0
	if _, err := NewSimulation(tn, nil, nil); err == nil {
		t.Error("Expected invalid tuning error")
	}
}

package highscore

import (
	"log"
	"sync/atomic"

	"github.com/olsujabu/snailgame/engine"
	"github.com/olsujabu/snailgame/events"
)

// Tracker follows the running score through routed events and persists new bests
// HandleEvent runs on the scheduler goroutine; Best may be read from any goroutine
type Tracker struct {
	store    Store
	best     atomic.Int64
	newBest  atomic.Bool // current session has beaten the stored best
	failures atomic.Int64
}

// NewTracker loads the stored best; an unreadable store starts from 0 and is logged
func NewTracker(store Store) *Tracker {
	t := &Tracker{store: store}
	if store == nil {
		return t
	}
	best, err := store.Load()
	if err != nil {
		log.Printf("highscore: %v, starting from 0", err)
		best = 0
	}
	t.best.Store(int64(best))
	return t
}

func (t *Tracker) EventTypes() []events.EventType {
	return []events.EventType{events.EventCollect, events.EventGameOver, events.EventStateChange}
}

func (t *Tracker) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventCollect:
		if p, ok := ev.Payload.(*events.CollectPayload); ok {
			t.observe(p.Score)
		}
	case events.EventGameOver:
		if p, ok := ev.Payload.(*events.GameOverPayload); ok {
			t.observe(p.Score)
		}
	case events.EventStateChange:
		// Leaving game over means a fresh session
		if p, ok := ev.Payload.(*events.StateChangePayload); ok && p.From == engine.StateGameOver.String() {
			t.newBest.Store(false)
		}
	}
}

func (t *Tracker) observe(score int) {
	if int64(score) <= t.best.Load() {
		return
	}
	t.best.Store(int64(score))
	t.newBest.Store(true)
	if t.store == nil {
		return
	}
	if err := t.store.Save(score); err != nil {
		t.failures.Add(1)
		log.Printf("highscore: save failed: %v", err)
	}
}

// Best returns the highest score seen, stored or live
func (t *Tracker) Best() int { return int(t.best.Load()) }

// NewBest reports whether the current session set the best score
func (t *Tracker) NewBest() bool { return t.newBest.Load() }

// SaveFailures counts writes the store rejected
func (t *Tracker) SaveFailures() int64 { return t.failures.Load() }

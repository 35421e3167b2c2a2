package events

import (
	"testing"

	"github.com/olsujabu/snailgame/constants"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventCollect, Tick: 1})
	eq.Push(GameEvent{Type: EventHit, Tick: 2})
	eq.Push(GameEvent{Type: EventJump, Tick: 3})

	if eq.Len() != 3 {
		t.Fatalf("Expected 3 pending events, got %d", eq.Len())
	}

	got := eq.Consume()
	want := []EventType{EventCollect, EventHit, EventJump}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Event %d: got %v, want %v", i, ev.Type, want[i])
		}
	}

	if eq.Consume() != nil {
		t.Error("Expected nil after draining queue")
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	eq := NewEventQueue()
	total := constants.EventQueueSize + 5
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventCollect, Tick: uint64(i)})
	}

	got := eq.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Expected %d retained events, got %d", constants.EventQueueSize, len(got))
	}
	if got[0].Tick != 5 {
		t.Errorf("Expected oldest retained tick 5, got %d", got[0].Tick)
	}
	if got[len(got)-1].Tick != uint64(total-1) {
		t.Errorf("Expected newest tick %d, got %d", total-1, got[len(got)-1].Tick)
	}
	if eq.Dropped() != 5 {
		t.Errorf("Expected 5 dropped, got %d", eq.Dropped())
	}
}

func TestEventQueueClear(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventHit})
	eq.Clear()
	if eq.Len() != 0 {
		t.Errorf("Expected empty queue after Clear, got %d", eq.Len())
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventCollect, "collect"},
		{EventGameOver, "game_over"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never routed
	EventNone EventType = iota

	// EventCollect signals a collectible pickup
	// Trigger: Simulation collision pass | Payload: *CollectPayload
	// Consumer: FeedbackHandler (OnCollect), highscore.Tracker
	EventCollect

	// EventHit signals hazard damage taken
	// Trigger: Simulation collision pass | Payload: *HitPayload
	// Consumer: FeedbackHandler (OnHit)
	EventHit

	// EventJump signals the player left the ground
	// Trigger: Player kinematics | Payload: nil
	// Consumer: FeedbackHandler (OnJump)
	EventJump

	// EventGameOver signals health reached zero
	// Trigger: Simulation collision pass | Payload: *GameOverPayload
	// Consumer: highscore.Tracker (flush)
	EventGameOver

	// EventStateChange signals a session state transition
	// Trigger: Simulation state machine | Payload: *StateChangePayload
	EventStateChange
)

var eventNames = map[EventType]string{
	EventNone:        "none",
	EventCollect:     "collect",
	EventHit:         "hit",
	EventJump:        "jump",
	EventGameOver:    "game_over",
	EventStateChange: "state_change",
}

// String returns the event's log name
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64  // Simulation tick that produced the event
	At      float64 // Simulation time in seconds
	Created time.Time
}

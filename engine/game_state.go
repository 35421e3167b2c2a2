package engine

import (
	"github.com/olsujabu/snailgame/engine/fsm"
	"github.com/olsujabu/snailgame/events"
)

// SessionState is the lifecycle phase gating the simulation
type SessionState uint8

const (
	StatePlaying SessionState = iota
	StatePaused
	StateGameOver
)

// FSM state names, shared by the graph below and SessionState.String
const (
	statePlayingName  = "playing"
	statePausedName   = "paused"
	stateGameOverName = "game_over"
)

// Triggers accepted by the session graph
const (
	TriggerPause   fsm.Trigger = "pause"
	TriggerResume  fsm.Trigger = "resume"
	TriggerDied    fsm.Trigger = "died"
	TriggerRestart fsm.Trigger = "restart"
)

func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return statePlayingName
	case StatePaused:
		return statePausedName
	case StateGameOver:
		return stateGameOverName
	}
	return "unknown"
}

// sessionGraph is the session lifecycle
// game_over is terminal except for restart, whose exit action re-initializes the session
const sessionGraph = `
initial = "playing"

[states.playing]
on_enter = ["PublishState"]
transitions = [
  { trigger = "pause", target = "paused" },
  { trigger = "died", target = "game_over", guard = "HealthDepleted" },
]

[states.paused]
on_enter = ["PublishState"]
transitions = [
  { trigger = "resume", target = "playing" },
]

[states.game_over]
on_enter = ["PublishState", "EmitGameOver"]
on_exit = ["ResetSession"]
transitions = [
  { trigger = "restart", target = "playing" },
]
`

// newSessionMachine builds the lifecycle FSM bound to the simulation's actions and guards
func newSessionMachine() (*fsm.Machine[*Simulation], error) {
	m := fsm.NewMachine[*Simulation]()

	m.RegisterGuard("HealthDepleted", func(s *Simulation) bool {
		return s.health <= 0
	})

	m.RegisterAction("PublishState", func(s *Simulation) {
		to := s.machine.CurrentName()
		if s.lastState != "" && s.lastState != to {
			s.emit(events.EventStateChange, &events.StateChangePayload{From: s.lastState, To: to})
		}
		s.lastState = to
	})
	m.RegisterAction("EmitGameOver", func(s *Simulation) {
		s.emit(events.EventGameOver, &events.GameOverPayload{Score: s.score})
	})
	m.RegisterAction("ResetSession", func(s *Simulation) {
		s.resetSession()
	})

	if err := m.LoadConfig([]byte(sessionGraph)); err != nil {
		return nil, err
	}
	return m, nil
}

// sessionStateOf maps the active FSM node to a SessionState
func sessionStateOf(m *fsm.Machine[*Simulation]) SessionState {
	switch m.CurrentName() {
	case statePausedName:
		return StatePaused
	case stateGameOverName:
		return StateGameOver
	}
	return StatePlaying
}

package fsm

// RootConfig is the top-level TOML graph
//
//	initial = "playing"
//	[states.playing]
//	on_enter = ["ResumeClock"]
//	transitions = [{ trigger = "pause", target = "paused" }]
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig is a single state definition
type StateConfig struct {
	OnEnter     []string           `toml:"on_enter"`
	OnExit      []string           `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig is a transition definition
type TransitionConfig struct {
	Trigger string `toml:"trigger"`
	Target  string `toml:"target"`
	Guard   string `toml:"guard"`
}

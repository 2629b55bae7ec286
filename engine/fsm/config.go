package fsm

import "github.com/BurntSushi/toml"

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	OnEnter     []ActionConfig     `toml:"on_enter"`
	OnUpdate    []ActionConfig     `toml:"on_update"`
	OnExit      []ActionConfig     `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger   string         `toml:"trigger"`    // Event name or "Tick"
	Target    string         `toml:"target"`     // Target state name
	Guard     string         `toml:"guard"`      // Guard or guard factory name
	GuardArgs map[string]any `toml:"guard_args"` // Parameters for factory guards
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action  string         `toml:"action"`  // Action function name (e.g. "EmitEvent")
	Event   string         `toml:"event"`   // EmitEvent: event name
	Payload toml.Primitive `toml:"payload"` // EmitEvent: decoded into the registered payload struct
}

package fsm

import (
	"time"

	"github.com/lixenwraith/meteor-fighter/event"
)

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards (e.g. *engine.World)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes     map[StateID]*Node[T]
	nameToID  map[string]StateID
	initialID StateID

	// Runtime state
	activeID    StateID
	timeInState time.Duration

	// Dependency injection
	guardReg        map[string]GuardFunc[T]
	guardFactoryReg map[string]GuardFactoryFunc[T]
	actionReg       map[string]ActionFunc[T]

	// onTransition runs between the OnExit of the old state and the OnEnter of the new one
	// from is empty on Init
	onTransition TransitionHook[T]
	// edgeValidator rejects graph edges at load time
	edgeValidator func(from, to string) error
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in declaration order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // 0 = Tick (evaluated in Update)
	Guard    GuardFunc[T]    // nil = always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any // Pre-compiled payload
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)

// GuardFactoryFunc creates a parameterized guard from TOML args
type GuardFactoryFunc[T any] func(m *Machine[T], args map[string]any) (GuardFunc[T], error)

// TransitionHook observes every state change
type TransitionHook[T any] func(ctx T, from, to string)

// EmitEventArgs is the compiled argument of the EmitEvent action
type EmitEventArgs struct {
	Type    event.EventType
	Payload any
}

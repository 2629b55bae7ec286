package fsm

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/meteor-fighter/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:           make(map[StateID]*Node[T]),
		nameToID:        make(map[string]StateID),
		guardReg:        make(map[string]GuardFunc[T]),
		guardFactoryReg: make(map[string]GuardFactoryFunc[T]),
		actionReg:       make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterGuardFactory adds a parameterized guard factory to the registry
func (m *Machine[T]) RegisterGuardFactory(name string, factory GuardFactoryFunc[T]) {
	m.guardFactoryReg[name] = factory
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// SetTransitionHook installs the state change observer
func (m *Machine[T]) SetTransitionHook(fn TransitionHook[T]) {
	m.onTransition = fn
}

// SetEdgeValidator installs a load-time check applied to every transition
// Must be set before LoadConfig
func (m *Machine[T]) SetEdgeValidator(fn func(from, to string) error) {
	m.edgeValidator = fn
}

// Init enters the initial state, running the hook and its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.initialID]
	if !ok {
		return errors.Errorf("initial state ID %d not found", m.initialID)
	}

	m.activeID = node.ID
	m.timeInState = 0
	if m.onTransition != nil {
		m.onTransition(ctx, "", node.Name)
	}
	runActions(ctx, node.OnEnter)
	return nil
}

// Update advances the FSM by dt, runs OnUpdate, then evaluates Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return
	}

	m.timeInState += dt
	runActions(ctx, node.OnUpdate)

	for _, trans := range node.Transitions {
		if trans.Event != 0 {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return
		}
	}
}

// HandleEvent routes an event through the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if eventType == 0 {
		return false
	}
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}

	for _, trans := range node.Transitions {
		if trans.Event != eventType {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition runs OnExit, the hook, then OnEnter of the target
// Self transitions are ignored
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}
	current := m.nodes[m.activeID]

	runActions(ctx, current.OnExit)

	m.activeID = targetID
	m.timeInState = 0

	if m.onTransition != nil {
		m.onTransition(ctx, current.Name, target.Name)
	}
	runActions(ctx, target.OnEnter)
}

// Reset exits the active state and re-enters the initial one
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.activeID]; ok {
		runActions(ctx, node.OnExit)
	}
	m.activeID = StateNone
	return m.Init(ctx)
}

// State returns the active state name, empty before Init
func (m *Machine[T]) State() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	id, ok := m.nameToID[name]
	return id, ok
}

// StateNames returns all loaded state names, sorted
func (m *Machine[T]) StateNames() []string {
	names := make([]string, 0, len(m.nameToID))
	for name := range m.nameToID {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

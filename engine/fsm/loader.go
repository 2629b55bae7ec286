package fsm

import (
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/meteor-fighter/event"
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions, events) and every edge
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return errors.Wrap(err, "unmarshal FSM config")
	}
	if len(config.States) == 0 {
		return errors.New("FSM config defines no states")
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeID = StateNone
	m.timeInState = 0

	// Sorted names for deterministic ID generation
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		id := StateID(i + 1)
		m.nameToID[name] = id
		m.nodes[id] = &Node[T]{ID: id, Name: name}
	}

	for _, name := range names {
		cfg := config.States[name]
		node := m.nodes[m.nameToID[name]]

		if node.OnEnter, err = m.compileActions(md, cfg.OnEnter); err != nil {
			return errors.Wrapf(err, "state '%s' on_enter", name)
		}
		if node.OnUpdate, err = m.compileActions(md, cfg.OnUpdate); err != nil {
			return errors.Wrapf(err, "state '%s' on_update", name)
		}
		if node.OnExit, err = m.compileActions(md, cfg.OnExit); err != nil {
			return errors.Wrapf(err, "state '%s' on_exit", name)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return errors.Wrapf(err, "state '%s' transitions", name)
		}
	}

	initialID, ok := m.nameToID[config.InitialState]
	if !ok {
		return errors.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.initialID = initialID

	return nil
}

func (m *Machine[T]) compileActions(md toml.MetaData, configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, errors.Errorf("unknown action function '%s'", cfg.Action)
		}

		var args any
		if cfg.Action == "EmitEvent" {
			if cfg.Event == "" {
				return nil, errors.New("EmitEvent action requires 'event' field")
			}
			et, ok := event.GetEventType(cfg.Event)
			if !ok || et == 0 {
				return nil, errors.Errorf("unknown event type '%s'", cfg.Event)
			}
			payload := event.NewPayloadStruct(et)
			if payload != nil {
				if err := md.PrimitiveDecode(cfg.Payload, payload); err != nil {
					return nil, errors.Wrapf(err, "decode payload for event '%s'", cfg.Event)
				}
			}
			args = &EmitEventArgs{Type: et, Payload: payload}
		}

		actions = append(actions, Action[T]{Func: fn, Args: args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for _, cfg := range configs {
		targetID, ok := m.nameToID[cfg.Target]
		if !ok {
			return errors.Errorf("transition references unknown target '%s'", cfg.Target)
		}
		if m.edgeValidator != nil {
			if err := m.edgeValidator(node.Name, cfg.Target); err != nil {
				return err
			}
		}

		et, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return errors.Errorf("unknown event type '%s'", cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			if factory, ok := m.guardFactoryReg[cfg.Guard]; ok {
				g, err := factory(m, cfg.GuardArgs)
				if err != nil {
					return errors.Wrapf(err, "guard '%s'", cfg.Guard)
				}
				guard = g
			} else if g, ok := m.guardReg[cfg.Guard]; ok {
				guard = g
			} else {
				return errors.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    et,
			Guard:    guard,
		})
	}
	return nil
}

// DurationArg reads a millisecond guard argument, TOML integers decode as int64
func DurationArg(args map[string]any, key string) (time.Duration, error) {
	v, ok := args[key]
	if !ok {
		return 0, errors.Errorf("missing '%s' argument", key)
	}
	switch n := v.(type) {
	case int64:
		return time.Duration(n) * time.Millisecond, nil
	case float64:
		return time.Duration(n * float64(time.Millisecond)), nil
	}
	return 0, errors.Errorf("argument '%s' must be a number, got %T", key, v)
}

package manifest

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/engine/fsm"
	"github.com/lixenwraith/meteor-fighter/event"
)

// RegisterFSMComponents registers all game-specific actions, guards and hooks with the FSM
func RegisterFSMComponents(m *fsm.Machine[*engine.World]) {
	registerCoreActions(m)
	registerGuardFactories(m)
	registerStaticGuards(m)

	m.SetEdgeValidator(validatePhaseEdge)
	m.SetTransitionHook(onPhaseTransition)
}

// === Core Actions ===

func registerCoreActions(m *fsm.Machine[*engine.World]) {
	m.RegisterAction("EmitEvent", func(world *engine.World, args any) {
		emitArgs, ok := args.(*fsm.EmitEventArgs)
		if !ok {
			return
		}
		world.PushEvent(emitArgs.Type, emitArgs.Payload)
	})
}

// === Guards ===

func registerGuardFactories(m *fsm.Machine[*engine.World]) {
	// StateTimeExceeds - time in the current phase reached args.ms
	m.RegisterGuardFactory("StateTimeExceeds", func(machine *fsm.Machine[*engine.World], args map[string]any) (fsm.GuardFunc[*engine.World], error) {
		d, err := fsm.DurationArg(args, "ms")
		if err != nil {
			return nil, errors.Wrap(err, "StateTimeExceeds")
		}
		return func(world *engine.World) bool {
			return machine.TimeInState() >= d
		}, nil
	})
}

func registerStaticGuards(m *fsm.Machine[*engine.World]) {
	// LifeDepleted - a PlayerDead notification only ends the run once life is actually gone
	m.RegisterGuard("LifeDepleted", func(world *engine.World) bool {
		return world.Resource.Life.Current <= 0
	})
}

// validatePhaseEdge rejects graph edges that break the phase cycle
func validatePhaseEdge(from, to string) error {
	f, ok := core.PhaseByName(from)
	if !ok {
		return errors.Errorf("unknown phase %q", from)
	}
	t, ok := core.PhaseByName(to)
	if !ok {
		return errors.Errorf("unknown phase %q", to)
	}
	if !core.IsValidTransition(f, t) {
		return errors.Errorf("invalid phase transition %s -> %s", f, t)
	}
	return nil
}

// onPhaseTransition mirrors the FSM into the phase resource and raises phase notifications
func onPhaseTransition(world *engine.World, from, to string) {
	res := world.Resource
	next, ok := core.PhaseByName(to)
	if !ok {
		return
	}

	if prev, ok := core.PhaseByName(from); ok {
		world.PushEvent(event.EventPhaseEnded, &event.PhasePayload{Phase: prev, RunID: res.Run.ID})
	}
	if next == core.PhaseStartGame {
		res.Run.Rotate()
	}
	res.Phase.Set(next, res.Time.FrameNumber)
	world.PushEvent(event.EventPhaseStarted, &event.PhasePayload{Phase: next, RunID: res.Run.ID})

	if from == "" {
		from = "-"
	}
	log.Printf("[phase] %s -> %s run=%s frame=%d", from, to, res.Run.ID, res.Time.FrameNumber)
}

package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine/fsm"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// ClockScheduler owns the tick: systems, event dispatch and phase transitions
// Step is the single authoritative tick; Start drives Step from a ticker
type ClockScheduler struct {
	world *World
	res   *Resource

	tickInterval time.Duration
	tickCount    atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// updateDone signals the presentation loop that a tick completed
	updateDone chan struct{}

	// Event routing
	eventRouter *event.Router

	// Phase state machine
	fsm *fsm.Machine[*World]

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler for world with the given tick interval
// Returns the scheduler and the receive side of its tick-completed signal
func NewClockScheduler(world *World, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		world:        world,
		res:          world.Resource,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		eventRouter:  event.NewRouter(),
		fsm:          fsm.NewMachine[*World](),
		statTicks:    world.Resource.Status.Ints.Get(parameter.StatTicks),
	}
	return cs, updateDone
}

// RegisterEventHandler adds an event handler to router, must be called before Start
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler) {
	cs.eventRouter.Register(handler)
}

// FSM exposes the machine for registration of actions and guards
func (cs *ClockScheduler) FSM() *fsm.Machine[*World] {
	return cs.fsm
}

// LoadFSM registers actions/guards, loads the graph and enters the initial phase
// Events emitted by the initial OnEnter are dispatched before returning
func (cs *ClockScheduler) LoadFSM(customPath, embedded string, registerComponents func(*fsm.Machine[*World])) error {
	registerComponents(cs.fsm)

	if err := fsm.LoadConfigAuto(cs.fsm, customPath, embedded); err != nil {
		return errors.Wrap(err, "load FSM config")
	}

	var initErr error
	cs.world.RunSafe(func() {
		if initErr = cs.fsm.Init(cs.world); initErr != nil {
			return
		}
		cs.dispatchAndProcessEvents()
	})
	if initErr != nil {
		return errors.Wrap(initErr, "init FSM")
	}
	return nil
}

// InitSystems calls Init on every registered system
func (cs *ClockScheduler) InitSystems() {
	for _, s := range cs.world.Systems() {
		s.Init()
	}
}

// Start begins the ticker loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the ticker loop and waits for the running tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.Step()

			select {
			case cs.updateDone <- struct{}{}:
			default:
			}
		}
	}
}

// Step runs exactly one tick under the world lock
func (cs *ClockScheduler) Step() {
	cs.world.RunSafe(cs.processTick)
	cs.statTicks.Store(int64(cs.tickCount.Add(1)))
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// processTick executes one clock cycle, caller holds the world lock
func (cs *ClockScheduler) processTick() {
	cs.res.Time.Advance(cs.tickInterval)

	// Gameplay systems for the phase active at tick start
	cs.world.UpdateLocked(cs.res.Phase.Current)

	// Events raised by systems (e.g. player dead) drive event transitions
	cs.dispatchAndProcessEvents()

	// Phase transitions are evaluated after the tick's effects are applied
	cs.fsm.Update(cs.world, cs.tickInterval)
	cs.dispatchAndProcessEvents()
}

// dispatchAndProcessEvents drains the queue through FSM then router
// Handlers may emit further events, repeated up to EventLoopIterations rounds
func (cs *ClockScheduler) dispatchAndProcessEvents() {
	q := cs.world.EventQueue()
	for i := 0; i < parameter.EventLoopIterations; i++ {
		eventsList := q.Consume()
		if len(eventsList) == 0 {
			return
		}
		for _, ev := range eventsList {
			cs.fsm.HandleEvent(cs.world, ev.Type)
			cs.eventRouter.Dispatch(ev)
		}
	}
	if n := q.Len(); n > 0 {
		log.Printf("[scheduler] %d events deferred to next tick", n)
	}
}

// Submit pushes an event from outside the tick and dispatches it under one hold of the world lock
// External goroutines (input) must use this rather than World.PushEvent
func (cs *ClockScheduler) Submit(eventType event.EventType, payload any) {
	cs.world.RunSafe(func() {
		cs.world.PushEvent(eventType, payload)
		cs.dispatchAndProcessEvents()
	})
}

// Phase returns the current phase under the world lock
func (cs *ClockScheduler) Phase() core.Phase {
	var p core.Phase
	cs.world.RunSafe(func() { p = cs.res.Phase.Current })
	return p
}

package event

import (
	"sync"

	"github.com/lixenwraith/meteor-fighter/parameter"
)

// EventQueue is a bounded FIFO shared by the input goroutine, the audio front end and systems
// When full the oldest pending event is overwritten and counted as dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int // Index of the oldest pending event
	pending int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, safe from any goroutine
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.ring[(eq.start+eq.pending)&parameter.EventBufferMask] = ev
	if eq.pending == parameter.EventQueueSize {
		eq.start = (eq.start + 1) & parameter.EventBufferMask
		eq.dropped++
		return
	}
	eq.pending++
}

// Consume drains every pending event in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.pending == 0 {
		return nil
	}
	out := make([]GameEvent, eq.pending)
	for i := range out {
		idx := (eq.start + i) & parameter.EventBufferMask
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{} // Release payload
	}
	eq.start = (eq.start + eq.pending) & parameter.EventBufferMask
	eq.pending = 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.pending
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}

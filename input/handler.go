package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/meteor-fighter/engine"
)

// DefaultHoldWindow covers the gap between the first key press and terminal auto-repeat
const DefaultHoldWindow = 400 * time.Millisecond

// Handler turns terminal key events into the per-tick input snapshot
// Terminals report presses only, so a held action stays active until its hold window lapses
type Handler struct {
	mu     sync.Mutex
	keymap *KeyMap
	window time.Duration
	until  map[Action]time.Time
	runes  map[rune]time.Time
}

// NewHandler creates a handler, a nil keymap selects DefaultKeyMap
func NewHandler(km *KeyMap, window time.Duration) *Handler {
	if km == nil {
		km = DefaultKeyMap()
	}
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &Handler{
		keymap: km,
		window: window,
		until:  make(map[Action]time.Time),
		runes:  make(map[rune]time.Time),
	}
}

// Process handles one terminal event and returns any one-shot action
func (h *Handler) Process(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.ProcessKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

// ProcessKey latches held actions and returns one-shot ones
func (h *Handler) ProcessKey(key tcell.Key, r rune, now time.Time) Action {
	h.mu.Lock()
	defer h.mu.Unlock()

	if key == tcell.KeyRune {
		h.runes[r] = now.Add(h.window)
	}

	a := h.keymap.Lookup(key, r)
	if a.Held() {
		h.until[a] = now.Add(h.window)
		// Opposite turn cancels immediately
		switch a {
		case ActionTurnLeft:
			delete(h.until, ActionTurnRight)
		case ActionTurnRight:
			delete(h.until, ActionTurnLeft)
		}
		return ActionNone
	}
	return a
}

// Active reports whether a held action is latched at now
func (h *Handler) Active(a Action, now time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeLocked(a, now)
}

func (h *Handler) activeLocked(a Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Release drops every latched action
func (h *Handler) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.until)
	clear(h.runes)
}

// Apply writes the snapshot for now into res, caller holds the world lock
func (h *Handler) Apply(res *engine.InputResource, now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	res.TurnLeft = h.activeLocked(ActionTurnLeft, now)
	res.TurnRight = h.activeLocked(ActionTurnRight, now)
	res.Thrust = h.activeLocked(ActionThrust, now)
	res.Fire = h.activeLocked(ActionFire, now)

	clear(res.Keys)
	for r, t := range h.runes {
		if now.Before(t) {
			res.Keys[r] = true
		} else {
			delete(h.runes, r)
		}
	}
}

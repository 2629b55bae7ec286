package input

import "github.com/gdamore/tcell/v2"

// Action is what a key does in the game
type Action uint8

const (
	ActionNone Action = iota

	// Held actions, latched for the hold window after each key event
	ActionTurnLeft
	ActionTurnRight
	ActionThrust
	ActionFire

	// One-shot actions, returned to the caller
	ActionStart
	ActionQuit
	ActionToggleHitBoxes
	ActionToggleMute
	ActionResize
)

var actionNames = [...]string{
	"None", "TurnLeft", "TurnRight", "Thrust", "Fire",
	"Start", "Quit", "ToggleHitBoxes", "ToggleMute", "Resize",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Held reports whether the action is a continuous control
func (a Action) Held() bool {
	return a >= ActionTurnLeft && a <= ActionFire
}

// KeyMap binds special keys and runes to actions
type KeyMap struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyMap returns arrows and WASD for flight, space to fire
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyUp:     ActionThrust,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			'w': ActionThrust,
			' ': ActionFire,
			'q': ActionQuit,
			'h': ActionToggleHitBoxes,
			'm': ActionToggleMute,
		},
	}
}

// Lookup resolves a key event, runes are matched case-insensitively
func (km *KeyMap) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		if a, ok := km.Runes[r]; ok {
			return a
		}
		if r >= 'A' && r <= 'Z' {
			return km.Runes[r+('a'-'A')]
		}
		return ActionNone
	}
	return km.Keys[key]
}

package asset

import (
	"fmt"

	"github.com/lixenwraith/meteor-fighter/parameter"
)

// DefaultPhaseGraph is the embedded phase state machine
// States are named after core.Phase values, edges must follow Phase.Next or EndGame -> StartGame
var DefaultPhaseGraph = fmt.Sprintf(phaseGraphTemplate,
	parameter.StartGameDuration.Milliseconds(),
	parameter.EndGameDuration.Milliseconds(),
)

const phaseGraphTemplate = `
initial = "Menu"

[states.Menu]
transitions = [
    { trigger = "EventGameStartRequest", target = "StartGame" },
]

# --- RUN SETUP: reset life, spawn the player, let the entry glide play ---

[states.StartGame]
on_enter = [
    { action = "EmitEvent", event = "EventLifeResetRequest" },
    { action = "EmitEvent", event = "EventPlayerSpawnRequest" },
    { action = "EmitEvent", event = "EventSoundRequest", payload = { cue = "start" } },
]
transitions = [
    { trigger = "Tick", target = "InGame", guard = "StateTimeExceeds", guard_args = { ms = %d } },
]

[states.InGame]
transitions = [
    { trigger = "EventPlayerDead", target = "Progression", guard = "LifeDepleted" },
]

# Pass-through, reserved for between-run progression
[states.Progression]
transitions = [
    { trigger = "Tick", target = "EndGame" },
]

[states.EndGame]
on_enter = [
    { action = "EmitEvent", event = "EventCleanupRequest" },
    { action = "EmitEvent", event = "EventSoundRequest", payload = { cue = "game_over" } },
]
transitions = [
    { trigger = "Tick", target = "StartGame", guard = "StateTimeExceeds", guard_args = { ms = %d } },
]
`

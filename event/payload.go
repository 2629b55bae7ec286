package event

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/meteor-fighter/core"
)

// GameEvent is the queued envelope for all events
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// PhasePayload names the phase and the run it belongs to
type PhasePayload struct {
	Phase core.Phase
	RunID uuid.UUID
}

// ProjectileFiredPayload carries the new projectile and its origin
type ProjectileFiredPayload struct {
	Entity   core.Entity
	Position mgl64.Vec2
}

// MeteorDestroyedPayload carries the tier and last position of a destroyed meteor
type MeteorDestroyedPayload struct {
	Size     core.MeteorSize
	Position mgl64.Vec2
}

// MeteorSplitPayload carries the child tier and how many children were spawned
type MeteorSplitPayload struct {
	Size     core.MeteorSize
	Position mgl64.Vec2
	Children int
}

// DamageAppliedPayload carries one applied damage event and the life left after it
type DamageAppliedPayload struct {
	Amount    int
	Remaining int
}

// ShipChangedPayload carries the player entity and its new ship type
type ShipChangedPayload struct {
	Entity core.Entity
	Ship   core.ShipType
}

// SoundRequestPayload names an audio cue, settable from the phase graph
type SoundRequestPayload struct {
	Cue string `toml:"cue"`
}

package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the simulation step, one tick per rendered frame (~60 FPS)
	TickInterval = 16 * time.Millisecond

	// EventLoopIterations bounds the dispatch loop so handlers emitting events cannot spin forever
	EventLoopIterations = 16

	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Window and layout
const (
	WindowWidth  = 800.0
	WindowHeight = 600.0

	// DespawnMargin extends the window half-extent to form the despawn border
	DespawnMargin = 100.0
)

// Phase timing, substituted into the default phase graph
const (
	StartGameDuration = 1500 * time.Millisecond
	EndGameDuration   = 1500 * time.Millisecond
)

// Status metric keys
const (
	StatTicks            = "engine.ticks"
	StatMeteorSpawned    = "meteor.spawned"
	StatMeteorSplit      = "meteor.split"
	StatMeteorDestroyed  = "meteor.destroyed"
	StatPowerUpSpawned   = "powerup.spawned"
	StatPowerUpCollected = "powerup.collected"
	StatProjectileFired  = "projectile.fired"
	StatDamageApplied    = "damage.applied"
	StatPlayerDeaths     = "player.deaths"
	StatEntityCulled     = "entity.culled"
	StatPhase            = "engine.phase"
)

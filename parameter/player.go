package parameter

import "time"

// Player ship handling, per tick values
const (
	PlayerMaxLife      = 5
	PlayerTurnSpeed    = 0.08 // Radians per tick
	PlayerAcceleration = 0.2
	PlayerDeceleration = 0.02 // Velocity fraction shed per tick without thrust
	PlayerMaxSpeed     = 6.0
	PlayerScale        = 0.5

	// PlayerShootCooldown gates firing to one projectile per period
	PlayerShootCooldown = 150 * time.Millisecond

	// PlayerEntryDuration is the glide from off-screen into the spawn point
	PlayerEntryDuration = 1500 * time.Millisecond
)

// Player hitbox half-extents before scale
const (
	PlayerHalfWidth  = 50.0
	PlayerHalfHeight = 38.0
)

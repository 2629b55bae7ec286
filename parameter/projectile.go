package parameter

import "time"

// Projectile
const (
	ProjectileSpeed      = 10.0
	ProjectileDespawn    = 1500 * time.Millisecond
	ProjectileScale      = 0.5
	ProjectileHalfWidth  = 5.0
	ProjectileHalfHeight = 14.0

	// ProjectileBoundsOffset widens the despawn border for projectiles
	ProjectileBoundsOffset = 10.0
)

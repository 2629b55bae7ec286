package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityPlayer     = 10   // Input, rotation, thrust, cooldown, fire
	PriorityProjectile = 20   // Projectile despawn timers, before collision sees JustFinished
	PriorityEntry      = 30   // Player entry glide during StartGame
	PriorityKinematics = 40   // Integration, spin, warp and bounds despawn
	PriorityCollision  = 50   // After kinematics, records damage and split events
	PriorityDamage     = 60   // Drains damage events collected by collision
	PrioritySplit      = 70   // Drains split events collected by collision
	PrioritySpawn      = 80   // Time-gated meteor and power-up spawns
	PriorityCull       = 1000 // After all others, destroys entities marked removed this tick
)

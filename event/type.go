package event

// EventType represents the type of game event
// Zero is reserved for the FSM "Tick" trigger and is never pushed
type EventType int

const (
	// === Phase Event ===

	// EventGameStartRequest leaves the Menu
	// Trigger: Input (enter), auto_start config | Consumer: FSM | Payload: nil
	EventGameStartRequest EventType = iota + 1

	// EventPhaseStarted announces the phase just entered
	// Trigger: FSM transition hook | Consumer: Lifecycle, Audio, logging | Payload: *PhasePayload
	EventPhaseStarted

	// EventPhaseEnded announces the phase just left, always before the matching EventPhaseStarted
	// Trigger: FSM transition hook | Consumer: Lifecycle | Payload: *PhasePayload
	EventPhaseEnded

	// === Lifecycle Event ===

	// EventPlayerSpawnRequest replaces any previous player with a fresh ship
	// Trigger: FSM StartGame on_enter | Consumer: LifecycleSystem | Payload: nil
	EventPlayerSpawnRequest

	// EventLifeResetRequest restores life to max and clears the current score
	// Trigger: FSM StartGame on_enter | Consumer: LifecycleSystem | Payload: nil
	EventLifeResetRequest

	// EventPlayerDead is raised once when life reaches zero
	// Trigger: DamageSystem | Consumer: FSM, LifecycleSystem, Audio | Payload: nil
	EventPlayerDead

	// EventCleanupRequest destroys every entity tagged for end-of-run cleanup
	// Trigger: FSM EndGame on_enter | Consumer: CleanupSystem | Payload: nil
	EventCleanupRequest

	// === Gameplay Event ===

	// EventProjectileFired reports a projectile spawn
	// Trigger: PlayerSystem | Consumer: Audio | Payload: *ProjectileFiredPayload
	EventProjectileFired

	// EventMeteorDestroyed reports a meteor hit by a projectile
	// Trigger: CollisionSystem | Consumer: ScoreSystem, Audio | Payload: *MeteorDestroyedPayload
	EventMeteorDestroyed

	// EventMeteorSplit reports a completed split cascade
	// Trigger: SplitSystem | Consumer: Audio | Payload: *MeteorSplitPayload
	EventMeteorSplit

	// EventDamageApplied reports one damage event applied to life
	// Trigger: DamageSystem | Consumer: Audio | Payload: *DamageAppliedPayload
	EventDamageApplied

	// EventShipChanged reports a power-up pickup
	// Trigger: CollisionSystem | Consumer: Audio, presentation | Payload: *ShipChangedPayload
	EventShipChanged

	// === Audio Event ===

	// EventSoundRequest requests a named cue
	// Trigger: FSM actions | Consumer: audio.SoundManager | Payload: *SoundRequestPayload
	EventSoundRequest
)

package component

// CleanupComponent tags an entity for removal at end of run
type CleanupComponent struct{}

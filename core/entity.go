package core

// Entity is an opaque handle to a simulation entity
// Handles are allocated monotonically and never reused within a World, so a
// stale handle simply misses every store instead of aliasing a newer entity
type Entity uint64

// NoEntity is the zero handle, never allocated
const NoEntity Entity = 0

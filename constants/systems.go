package constants

// System Priorities (lower runs first)
const (
	// PriorityProjectile moves kisses and reports at most one collision
	PriorityProjectile = 10

	// PriorityCombo expires stale streaks, then gates the reported collision
	PriorityCombo = 20

	// PriorityParticle ages existing particles and spawns the burst for an accepted hit
	PriorityParticle = 30
)

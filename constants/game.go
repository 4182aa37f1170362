package constants

import "time"

// Scoring & Timing Defaults
const (
	// TargetHits is the accepted-hit count that wins the game
	TargetHits = 10

	// HitCooldown is the minimum gap between two counted hits
	HitCooldown = 800 * time.Millisecond

	// ComboWindow is how long a combo streak survives without a new accepted hit
	ComboWindow = 2 * time.Second

	// ComboBurstThreshold is the streak at which hits spawn the large particle burst
	ComboBurstThreshold = 3
)

// Projectile Defaults (logical pixels per reference frame)
const (
	ProjectileSpeed = 6.0
	HitRadius       = 60.0

	// ExitMargin is how far past the right edge a projectile travels before it is dropped
	ExitMargin = 50.0
)

// Anchor Defaults (fractions of the play area)
const (
	EmitterAnchorX = 0.15
	EmitterAnchorY = 0.5
	TargetAnchorX  = 0.85
	TargetAnchorY  = 0.5
)

package components

import "time"

// HitEvent is emitted by the collision pass when a projectile enters the target's hit circle
type HitEvent struct {
	X, Y float64   // Impact coordinates (target anchor)
	At   time.Time // Tick timestamp the collision was detected on
}

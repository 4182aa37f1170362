package components

// Projectile is a kiss in flight from the emitter toward the target.
// Horizontal velocity is a configuration constant, so only position is stored.
type Projectile struct {
	ID uint64
	X  float64
	Y  float64
}

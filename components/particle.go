package components

// Particle is a decorative point spawned in a burst on an accepted hit.
// Particles never take part in collision or scoring.
type Particle struct {
	ID     uint64
	X, Y   float64
	VX, VY float64
	Life   float64 // (0,1], decays every tick
	Glyph  string
}

// Alive reports whether the particle should still be rendered
func (p Particle) Alive() bool {
	return p.Life > 0
}

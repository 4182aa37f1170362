package constants

// Particle Burst Defaults
const (
	BurstSize      = 15
	ComboBurstSize = 25

	// Radial speed ranges, logical pixels per reference frame
	ParticleSpeedMin      = 2.0
	ParticleSpeedMax      = 7.5
	ComboParticleSpeedMin = 3.0
	ComboParticleSpeedMax = 10.0

	// ParticleUpwardBias is subtracted from every spawned particle's vertical velocity
	ParticleUpwardBias = 5.0

	// ParticleGravity is added to vertical velocity per reference frame
	ParticleGravity = 0.5

	// ParticleDecay is the life lost per reference frame; life starts at 1.0
	ParticleDecay = 0.015
)

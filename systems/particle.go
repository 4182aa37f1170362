package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/love-tap/components"
	"github.com/lixenwraith/love-tap/config"
	"github.com/lixenwraith/love-tap/constants"
	"github.com/lixenwraith/love-tap/engine"
	"github.com/lixenwraith/love-tap/physics"
)

// Rand is the random source particles are drawn from; *rand.Rand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// BurstSpec describes one kind of particle burst
type BurstSpec struct {
	Count      int
	SpeedMin   float64
	SpeedMax   float64
	UpwardBias float64
	Palette    []string
}

// SpawnParticle draws one particle at (x, y): direction uniform in [0, 2π),
// speed uniform in [SpeedMin, SpeedMax], vertical velocity biased upward, full life.
func SpawnParticle(rng Rand, id uint64, x, y float64, spec BurstSpec) components.Particle {
	angle := rng.Float64() * 2 * math.Pi
	speed := spec.SpeedMin + rng.Float64()*(spec.SpeedMax-spec.SpeedMin)

	glyph := constants.HeartGlyph
	if len(spec.Palette) > 0 {
		glyph = spec.Palette[rng.Intn(len(spec.Palette))]
	}

	return components.Particle{
		ID:    id,
		X:     x,
		Y:     y,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle)*speed - spec.UpwardBias,
		Life:  1.0,
		Glyph: glyph,
	}
}

// ParticleSystem emits hit bursts and ages particles.
// It is the only writer of the particle list.
type ParticleSystem struct {
	rng            Rand
	normal         BurstSpec
	combo          BurstSpec
	gravity        float64
	decay          float64
	comboThreshold int
}

// NewParticleSystem creates a particle system; palettes come from the cast
func NewParticleSystem(cfg config.ParticleConfig, comboThreshold int, palette, comboPalette []string, rng Rand) *ParticleSystem {
	return &ParticleSystem{
		rng: rng,
		normal: BurstSpec{
			Count:      cfg.BurstSize,
			SpeedMin:   cfg.SpeedMin,
			SpeedMax:   cfg.SpeedMax,
			UpwardBias: cfg.UpwardBias,
			Palette:    palette,
		},
		combo: BurstSpec{
			Count:      cfg.ComboBurstSize,
			SpeedMin:   cfg.ComboSpeedMin,
			SpeedMax:   cfg.ComboSpeedMax,
			UpwardBias: cfg.UpwardBias,
			Palette:    comboPalette,
		},
		gravity:        cfg.Gravity,
		decay:          cfg.Decay,
		comboThreshold: comboThreshold,
	}
}

// Priority returns the system's priority
func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

// Update ages existing particles, then bursts at an accepted hit.
// New particles are left at full life for the frame they appear in.
func (s *ParticleSystem) Update(tick *engine.Tick) {
	s.Advance(tick.State, tick.DT)
	if tick.Hit != nil && tick.Accepted {
		s.SpawnBurst(tick.State, tick.Hit.X, tick.Hit.Y, tick.State.Combo >= s.comboThreshold)
	}
}

// SpawnBurst appends a normal or combo burst centered on (x, y) and returns its size
func (s *ParticleSystem) SpawnBurst(state *engine.GameState, x, y float64, combo bool) int {
	spec := s.normal
	if combo {
		spec = s.combo
	}
	for i := 0; i < spec.Count; i++ {
		state.Particles = append(state.Particles, SpawnParticle(s.rng, state.NextID(), x, y, spec))
	}
	return spec.Count
}

// Advance integrates velocity, applies gravity, decays life and drops particles
// whose life reached zero
func (s *ParticleSystem) Advance(state *engine.GameState, dt time.Duration) {
	if dt <= 0 {
		return
	}
	f := physics.FrameScale(dt)

	kept := state.Particles[:0]
	for _, p := range state.Particles {
		p.X, p.Y, p.VX, p.VY = physics.Integrate(p.X, p.Y, p.VX, p.VY, 0, s.gravity, f)
		p.Life -= s.decay * f
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	clearTail(state.Particles, len(kept))
	state.Particles = kept
}

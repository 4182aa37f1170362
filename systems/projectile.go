package systems

import (
	"time"

	"github.com/lixenwraith/love-tap/components"
	"github.com/lixenwraith/love-tap/config"
	"github.com/lixenwraith/love-tap/constants"
	"github.com/lixenwraith/love-tap/engine"
	"github.com/lixenwraith/love-tap/physics"
)

// ProjectileSystem moves projectiles toward the target and detects collisions.
// It is the only writer of the projectile list.
type ProjectileSystem struct {
	speed      float64
	hitRadius  float64
	exitMargin float64
}

// NewProjectileSystem creates a projectile system from config
func NewProjectileSystem(cfg config.ProjectileConfig) *ProjectileSystem {
	return &ProjectileSystem{
		speed:      cfg.Speed,
		hitRadius:  cfg.HitRadius,
		exitMargin: cfg.ExitMargin,
	}
}

// Priority returns the system's priority
func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

// Update advances live projectiles, then spawns queued ones at the emitter anchor
func (s *ProjectileSystem) Update(tick *engine.Tick) {
	if hit, ok := s.Advance(tick.State, tick.Layout, tick.Now, tick.DT); ok {
		tick.Hit = &hit
	}
	tick.Emitted = s.SpawnPending(tick.State, tick.Layout)
}

// Advance moves every projectile by speed scaled to dt and tests it against the
// target's hit circle along the path it swept this tick, so a long frame cannot carry
// it across the circle. A projectile that touched the circle is consumed; only the first one
// in iteration order produces the returned hit, any others are dropped unscored.
// Projectiles past the right edge plus the exit margin are dropped silently.
func (s *ProjectileSystem) Advance(state *engine.GameState, layout engine.Layout, now time.Time, dt time.Duration) (components.HitEvent, bool) {
	var hit components.HitEvent
	hitFound := false

	if dt <= 0 {
		return hit, false
	}

	f := physics.FrameScale(dt)
	tx, ty := layout.TargetAnchor()
	limit := layout.Width + s.exitMargin

	kept := state.Projectiles[:0]
	for _, p := range state.Projectiles {
		px, py := p.X, p.Y
		p.X, p.Y, _, _ = physics.Integrate(p.X, p.Y, s.speed, 0, 0, 0, f)

		if physics.SegmentWithinRadius(px, py, p.X, p.Y, tx, ty, s.hitRadius) {
			if !hitFound {
				hit = components.HitEvent{X: tx, Y: ty, At: now}
				hitFound = true
			}
			continue
		}
		if p.X > limit {
			continue
		}
		kept = append(kept, p)
	}
	clearTail(state.Projectiles, len(kept))
	state.Projectiles = kept

	return hit, hitFound
}

// SpawnPending turns queued emit requests into projectiles and returns how many spawned
func (s *ProjectileSystem) SpawnPending(state *engine.GameState, layout engine.Layout) int {
	n := state.TakePendingEmits()
	if n == 0 {
		return 0
	}
	x, y := layout.EmitterAnchor()
	for i := 0; i < n; i++ {
		state.Projectiles = append(state.Projectiles, components.Projectile{
			ID: state.NextID(),
			X:  x,
			Y:  y,
		})
	}
	return n
}

// clearTail zeroes the slots left behind by in-place compaction
func clearTail[T any](s []T, from int) {
	var zero T
	for i := from; i < len(s); i++ {
		s[i] = zero
	}
}

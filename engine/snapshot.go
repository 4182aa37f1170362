package engine

import (
	"time"

	"github.com/lixenwraith/love-tap/components"
)

// Snapshot is a read-only copy of the simulation taken after a tick completes.
// The renderer owns its snapshot; mutating it has no effect on the game.
type Snapshot struct {
	Projectiles []components.Projectile
	Particles   []components.Particle

	Hits   int
	Target int
	Combo  int
	Won    bool

	LastHitAt time.Time
	WonAt     time.Time

	Layout Layout
}

// Progress returns the fraction of the target reached, clamped to [0, 1]
func (s Snapshot) Progress() float64 {
	if s.Target <= 0 {
		return 0
	}
	p := float64(s.Hits) / float64(s.Target)
	if p > 1 {
		return 1
	}
	return p
}

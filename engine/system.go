package engine

import (
	"time"

	"github.com/lixenwraith/love-tap/components"
)

// System is one stage of the per-frame update
type System interface {
	Update(tick *Tick)
	Priority() int // Lower values run first
}

// Tick carries one frame through the systems.
// Hit and Accepted are written by earlier stages and read by later ones.
type Tick struct {
	Now    time.Time
	DT     time.Duration
	State  *GameState
	Layout Layout

	Hit      *components.HitEvent // collision reported this tick, at most one
	Accepted bool                 // Hit passed the cooldown gate
	Emitted  int                  // projectiles spawned this tick
}

package engine

import (
	"time"

	"github.com/lixenwraith/love-tap/components"
)

// GameState is the authoritative simulation state.
// It is owned by a Simulation and only touched inside its tick lock.
// Each field has a single writer:
//   - Projectiles, pending emits: projectile system
//   - Particles: particle system
//   - Hits, Combo, Won, LastHitAt, ComboDeadline, WonAt: combo system
type GameState struct {
	Target int

	Projectiles []components.Projectile
	Particles   []components.Particle

	Hits  int
	Combo int
	Won   bool

	LastHitAt     time.Time // zero until the first accepted hit
	ComboDeadline time.Time
	WonAt         time.Time

	pendingEmits int
	nextID       uint64
}

// NewGameState creates a state for a game won at target accepted hits
func NewGameState(target int) *GameState {
	s := &GameState{Target: target}
	s.Reset()
	return s
}

// Reset restores the initial state, keeping the target and the id sequence
func (s *GameState) Reset() {
	s.Projectiles = make([]components.Projectile, 0, 16)
	s.Particles = make([]components.Particle, 0, 64)
	s.Hits = 0
	s.Combo = 0
	s.Won = false
	s.LastHitAt = time.Time{}
	s.ComboDeadline = time.Time{}
	s.WonAt = time.Time{}
	s.pendingEmits = 0
}

// NextID returns a fresh entity id. Ids are never reused, even across restarts.
func (s *GameState) NextID() uint64 {
	s.nextID++
	return s.nextID
}

// QueueEmit records a request for one projectile at the emitter anchor
func (s *GameState) QueueEmit() {
	s.pendingEmits++
}

// PendingEmits returns the number of queued projectile requests
func (s *GameState) PendingEmits() int {
	return s.pendingEmits
}

// TakePendingEmits returns and clears the queued projectile requests
func (s *GameState) TakePendingEmits() int {
	n := s.pendingEmits
	s.pendingEmits = 0
	return n
}

// Snapshot copies the state for rendering
func (s *GameState) Snapshot(layout Layout) Snapshot {
	snap := Snapshot{
		Projectiles: make([]components.Projectile, len(s.Projectiles)),
		Particles:   make([]components.Particle, len(s.Particles)),
		Hits:        s.Hits,
		Target:      s.Target,
		Combo:       s.Combo,
		Won:         s.Won,
		LastHitAt:   s.LastHitAt,
		WonAt:       s.WonAt,
		Layout:      layout,
	}
	copy(snap.Projectiles, s.Projectiles)
	copy(snap.Particles, s.Particles)
	return snap
}

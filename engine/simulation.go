package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/love-tap/components"
)

// HitListener observes accepted hits after the tick that scored them
type HitListener func(hit components.HitEvent, combo int)

// Simulation owns the game state and runs the systems once per frame.
// Every entry point takes the same lock, so input may arrive from any goroutine
// while the frame loop ticks.
type Simulation struct {
	mu      sync.Mutex
	state   *GameState
	layout  Layout
	driver  *FrameDriver
	systems []System
	log     *zap.Logger

	onEmit    []func()
	onHit     []HitListener
	onWin     []func(hits int)
	onRestart []func()
}

// NewSimulation creates a simulation over state, timed by driver
func NewSimulation(state *GameState, layout Layout, driver *FrameDriver, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulation{
		state:   state,
		layout:  layout,
		driver:  driver,
		systems: make([]System, 0, 4),
		log:     log,
	}
}

// AddSystem registers a system, keeping priority order stable for equal priorities
func (s *Simulation) AddSystem(sys System) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := len(s.systems)
	for i, existing := range s.systems {
		if sys.Priority() < existing.Priority() {
			pos = i
			break
		}
	}
	s.systems = append(s.systems, nil)
	copy(s.systems[pos+1:], s.systems[pos:])
	s.systems[pos] = sys
}

// Listeners must be registered before the frame loop starts.

// OnEmit registers a listener for accepted projectile emits
func (s *Simulation) OnEmit(fn func()) { s.onEmit = append(s.onEmit, fn) }

// OnHit registers a listener for accepted hits
func (s *Simulation) OnHit(fn HitListener) { s.onHit = append(s.onHit, fn) }

// OnWin registers a listener for the win transition
func (s *Simulation) OnWin(fn func(hits int)) { s.onWin = append(s.onWin, fn) }

// OnRestart registers a listener for restarts
func (s *Simulation) OnRestart(fn func()) { s.onRestart = append(s.onRestart, fn) }

// EmitProjectile queues one projectile at the emitter anchor.
// Returns false, without queueing, once the game is won.
func (s *Simulation) EmitProjectile() bool {
	s.mu.Lock()
	if s.state.Won {
		s.mu.Unlock()
		return false
	}
	s.state.QueueEmit()
	s.mu.Unlock()

	for _, fn := range s.onEmit {
		s.notify("emit", fn)
	}
	return true
}

// Tick advances the simulation to now.
// The first tick after start or restart only records the timestamp; once the game is
// won ticks are no-ops until Restart.
func (s *Simulation) Tick(now time.Time) {
	s.mu.Lock()

	dt := s.driver.Step(now)
	if s.state.Won || dt <= 0 {
		s.mu.Unlock()
		return
	}

	tick := &Tick{
		Now:    now,
		DT:     dt,
		State:  s.state,
		Layout: s.layout,
	}
	for _, sys := range s.systems {
		sys.Update(tick)
	}

	won := s.state.Won
	hits := s.state.Hits
	combo := s.state.Combo
	inFlight := len(s.state.Projectiles)
	s.mu.Unlock()

	if tick.Emitted > 0 {
		s.log.Debug("projectiles emitted", zap.Int("count", tick.Emitted), zap.Int("in_flight", inFlight))
	}

	if tick.Hit != nil && tick.Accepted {
		s.log.Debug("hit accepted",
			zap.Int("hits", hits),
			zap.Int("combo", combo),
			zap.Float64("x", tick.Hit.X),
			zap.Float64("y", tick.Hit.Y))
		hit := *tick.Hit
		for _, fn := range s.onHit {
			s.notify("hit", func() { fn(hit, combo) })
		}
	}
	if won {
		s.log.Info("target reached", zap.Int("hits", hits))
		for _, fn := range s.onWin {
			s.notify("win", func() { fn(hits) })
		}
	}
}

// Restart clears all state regardless of what came before
func (s *Simulation) Restart() {
	s.mu.Lock()
	s.state.Reset()
	s.driver.Reset()
	s.mu.Unlock()

	s.log.Info("game restarted")
	for _, fn := range s.onRestart {
		s.notify("restart", fn)
	}
}

// Resize updates the play area from a terminal size in cells
func (s *Simulation) Resize(cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout.ResizeCells(cols, rows)
}

// Layout returns the current layout
func (s *Simulation) Layout() Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

// Won reports whether the target has been reached
func (s *Simulation) Won() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Won
}

// Snapshot copies the state for rendering
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot(s.layout)
}

// notify runs a listener outside the lock; listener failures never reach the simulation
func (s *Simulation) notify(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("listener panicked", zap.String("event", name), zap.Any("panic", r))
		}
	}()
	fn()
}

package systems

import (
	"time"

	"github.com/lixenwraith/love-tap/config"
	"github.com/lixenwraith/love-tap/constants"
	"github.com/lixenwraith/love-tap/engine"
)

// ComboSystem gates collisions through the hit cooldown, keeps the combo streak and
// flips the win flag. It is the only writer of the score fields.
// Both timers are deadlines compared against the tick timestamp.
type ComboSystem struct {
	cooldown    time.Duration
	comboWindow time.Duration
}

// NewComboSystem creates a combo system from config
func NewComboSystem(cfg config.GameConfig) *ComboSystem {
	return &ComboSystem{
		cooldown:    cfg.Cooldown.Duration,
		comboWindow: cfg.ComboWindow.Duration,
	}
}

// Priority returns the system's priority
func (s *ComboSystem) Priority() int {
	return constants.PriorityCombo
}

// Update expires a stale streak, then registers this tick's collision if any
func (s *ComboSystem) Update(tick *engine.Tick) {
	s.Expire(tick.State, tick.Now)
	if tick.Hit != nil {
		tick.Accepted = s.Register(tick.State, tick.Hit.At)
	}
}

// Expire resets the streak once its deadline has passed
func (s *ComboSystem) Expire(state *engine.GameState, now time.Time) {
	if state.Combo > 0 && !now.Before(state.ComboDeadline) {
		state.Combo = 0
	}
}

// Register counts a hit at the given time unless it falls within the cooldown of the
// previous accepted hit. Returns whether the hit was accepted.
func (s *ComboSystem) Register(state *engine.GameState, at time.Time) bool {
	if state.Won {
		return false
	}
	if !state.LastHitAt.IsZero() && at.Sub(state.LastHitAt) <= s.cooldown {
		return false
	}

	state.LastHitAt = at
	state.Hits++
	state.Combo++
	state.ComboDeadline = at.Add(s.comboWindow)

	if state.Hits >= state.Target {
		state.Won = true
		state.WonAt = at
	}
	return true
}

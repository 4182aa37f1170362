package systems

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/love-tap/config"
	"github.com/lixenwraith/love-tap/engine"
)

// NewGame builds a simulation with the projectile, combo and particle systems registered.
// The driver times the ticks; a nil rng seeds one from the wall clock.
func NewGame(cfg *config.Config, cast *config.Cast, driver *engine.FrameDriver, rng Rand, log *zap.Logger) *engine.Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	layout := engine.DefaultLayout()
	layout.EmitterX, layout.EmitterY = cfg.Layout.EmitterX, cfg.Layout.EmitterY
	layout.TargetX, layout.TargetY = cfg.Layout.TargetX, cfg.Layout.TargetY
	layout.CellWidth, layout.CellHeight = cfg.Layout.CellWidth, cfg.Layout.CellHeight

	state := engine.NewGameState(cfg.Game.TargetHits)
	sim := engine.NewSimulation(state, layout, driver, log)

	sim.AddSystem(NewProjectileSystem(cfg.Projectile))
	sim.AddSystem(NewComboSystem(cfg.Game))
	sim.AddSystem(NewParticleSystem(cfg.Particles, cfg.Game.ComboBurstThreshold, cast.Palette, cast.ComboPalette, rng))

	return sim
}

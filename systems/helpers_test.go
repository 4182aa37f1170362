package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/love-tap/config"
	"github.com/lixenwraith/love-tap/constants"
	"github.com/lixenwraith/love-tap/engine"
)

var testStart = time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC)

// testGame drives a full simulation on a mock clock with reference-length frames
type testGame struct {
	t     *testing.T
	sim   *engine.Simulation
	clock *engine.ManualClock
}

func newTestGame(t *testing.T, mutate func(*config.Config)) *testGame {
	t.Helper()
	cfg := config.Defaults()
	if mutate != nil {
		mutate(cfg)
	}
	clock := engine.NewManualClock(testStart)
	driver := engine.NewFrameDriver(clock, cfg.Frame.Interval.Duration)
	sim := NewGame(cfg, config.DefaultCast(), driver, rand.New(rand.NewSource(42)), nil)

	g := &testGame{t: t, sim: sim, clock: clock}
	sim.Tick(clock.Now()) // zero-delta first frame
	return g
}

func (g *testGame) step() engine.Snapshot {
	g.sim.Tick(g.clock.Advance(constants.ReferenceFrame))
	return g.sim.Snapshot()
}

func (g *testGame) stepBy(d time.Duration) engine.Snapshot {
	g.sim.Tick(g.clock.Advance(d))
	return g.sim.Snapshot()
}

// landHit emits one kiss and steps until the hit count moves, returning the snapshot
// of the scoring tick
func (g *testGame) landHit() engine.Snapshot {
	g.t.Helper()
	before := g.sim.Snapshot().Hits
	if !g.sim.EmitProjectile() {
		g.t.Fatal("EmitProjectile rejected")
	}
	for i := 0; i < 1000; i++ {
		snap := g.step()
		if snap.Hits != before {
			return snap
		}
	}
	g.t.Fatal("projectile never scored")
	return engine.Snapshot{}
}

// fixedRand returns the same values forever
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

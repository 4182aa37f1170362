package render

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/love-tap/components"
	"github.com/lixenwraith/love-tap/config"
	"github.com/lixenwraith/love-tap/constants"
	"github.com/lixenwraith/love-tap/engine"
)

var testNow = time.Date(2024, 2, 14, 20, 0, 0, 0, time.UTC)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func testSnapshot() engine.Snapshot {
	layout := engine.DefaultLayout()
	layout.ResizeCells(80, 24)
	return engine.Snapshot{Target: 10, Layout: layout}
}

// rowText reads a screen row back as a string of primary runes
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawHUD(t *testing.T) {
	tests := []struct {
		name      string
		hits      int
		combo     int
		wantCombo bool
		wantBar   int
	}{
		{"empty", 0, 0, false, 0},
		{"single hit no combo line", 1, 1, false, 3},
		{"combo shown", 3, 2, true, 9},
		{"full bar", 10, 4, true, constants.ProgressBarWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			r := NewRenderer(screen, config.DefaultCast())

			snap := testSnapshot()
			snap.Hits = tt.hits
			snap.Combo = tt.combo
			r.Draw(snap, testNow)

			counter := rowText(screen, constants.HUDRow)
			want := "Kisses: " + strconv.Itoa(tt.hits) + " / 10"
			if !strings.Contains(counter, want) {
				t.Errorf("HUD row %q missing %q", counter, want)
			}

			comboRow := rowText(screen, constants.HUDRow+1)
			if got := strings.Contains(comboRow, "COMBO!"); got != tt.wantCombo {
				t.Errorf("combo line shown = %v, want %v (%q)", got, tt.wantCombo, comboRow)
			}

			bar := rowText(screen, constants.HUDRow+2)
			if got := strings.Count(bar, "█"); got != tt.wantBar {
				t.Errorf("filled bar cells = %d, want %d", got, tt.wantBar)
			}
		})
	}
}

func TestDrawHintLine(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, nil)
	r.Draw(testSnapshot(), testNow)

	if row := rowText(screen, 23); !strings.Contains(row, "SPACE") {
		t.Errorf("hint line missing, got %q", row)
	}
}

func TestDrawCharacterNames(t *testing.T) {
	screen := newTestScreen(t)
	cast := config.DefaultCast()
	r := NewRenderer(screen, cast)

	snap := testSnapshot()
	r.Draw(snap, testNow)

	_, row := snap.Layout.ToCell(snap.Layout.EmitterAnchor())
	names := rowText(screen, row+1)
	for _, name := range []string{cast.Player1.Name, cast.Player2.Name} {
		if !strings.Contains(names, name) {
			t.Errorf("name row %q missing %q", names, name)
		}
	}
}

func TestCelebrationReveal(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, config.DefaultCast())

	snap := testSnapshot()
	snap.Hits, snap.Won, snap.WonAt = 10, true, testNow

	// Before the reveal delay only the overlay and hearts are shown
	r.Draw(snap, testNow.Add(100*time.Millisecond))
	if r.buttonVisible {
		t.Fatal("button should stay hidden during the reveal delay")
	}
	if r.ButtonHit(40, 15) {
		t.Error("hidden button should not accept clicks")
	}

	r.Draw(snap, testNow.Add(constants.CelebrationRevealDelay+time.Millisecond))
	if !r.ButtonHit(r.button.x, r.button.y) {
		t.Fatal("button should accept a click on its first cell")
	}
	if r.ButtonHit(r.button.x-1, r.button.y) || r.ButtonHit(r.button.x, r.button.y+1) {
		t.Error("click outside the button was accepted")
	}

	if row := rowText(screen, r.button.y); !strings.Contains(row, "Play Again") {
		t.Errorf("button row %q missing label", row)
	}
	if row := rowText(screen, 24/2-3); !strings.Contains(row, "RINNI") || !strings.Contains(row, "TUSHAR") {
		t.Errorf("names line should be upper-cased, got %q", row)
	}
	if row := rowText(screen, 24/2-1); !strings.Contains(row, constants.CelebrationTitle) {
		t.Errorf("title row %q", row)
	}

	// Restarted game hides the button again
	snap.Won = false
	r.Draw(snap, testNow.Add(time.Second))
	if r.ButtonHit(r.button.x, r.button.y) {
		t.Error("button should not be clickable after restart")
	}
}

func TestShakeOffset(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		combo   int
		maxAbs  int
	}{
		{"before hit", -time.Millisecond, 3, 0},
		{"expired", constants.TargetShakeDuration, 3, 0},
		{"long after", time.Second, 3, 0},
		{"single", 10 * time.Millisecond, 1, 1},
		{"combo three", 10 * time.Millisecond, 3, 3},
		{"capped", 10 * time.Millisecond, 50, constants.TargetShakeMaxIntensity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShakeOffset(tt.elapsed, tt.combo)
			if got < -tt.maxAbs || got > tt.maxAbs {
				t.Errorf("ShakeOffset(%v, %d) = %d, want |x| <= %d", tt.elapsed, tt.combo, got, tt.maxAbs)
			}
		})
	}

	// The wobble actually moves during the window
	moved := false
	for ms := 0; ms < 100; ms++ {
		if ShakeOffset(time.Duration(ms)*time.Millisecond, 5) != 0 {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("target never moved during shake window")
	}
}

func TestParticleGlyph(t *testing.T) {
	tests := []struct {
		glyph string
		life  float64
		want  string
	}{
		{"💖", 1, "💖"},
		{"💖", constants.FadedLife, "💖"},
		{"💖", constants.FadedLife - 0.01, constants.FadedGlyph},
		{"", 1, constants.FadedGlyph},
	}
	for _, tt := range tests {
		if got := ParticleGlyph(tt.glyph, tt.life); got != tt.want {
			t.Errorf("ParticleGlyph(%q, %v) = %q, want %q", tt.glyph, tt.life, got, tt.want)
		}
	}
}

func TestParticleColorFades(t *testing.T) {
	if got, want := ParticleColor(1, ColBackground), toTcell(ColAccent); got != want {
		t.Errorf("full life color = %v, want accent %v", got, want)
	}
	if got, want := ParticleColor(0, ColBackground), toTcell(ColBackground); got != want {
		t.Errorf("dead color = %v, want background %v", got, want)
	}
	// Out-of-range life clamps
	if got, want := ParticleColor(-1, ColBackground), toTcell(ColBackground); got != want {
		t.Errorf("negative life color = %v, want %v", got, want)
	}
}

func TestDrawParticlesAndProjectiles(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, config.DefaultCast())

	snap := testSnapshot()
	snap.Particles = []components.Particle{{ID: 1, X: 300, Y: 300, Life: 0.1, Glyph: "💖"}}
	r.Draw(snap, testNow)

	col, row := snap.Layout.ToCell(300, 300)
	if got, _, _, _ := screen.GetContent(col, row); got != '·' {
		t.Errorf("faded particle drawn as %q, want '·'", got)
	}
}

func TestCelebrationHeartsRise(t *testing.T) {
	c := newCelebration(rand.New(rand.NewSource(1)))
	c.update(testNow, testNow, 80, 24)
	if len(c.hearts) != constants.CelebrationHearts {
		t.Fatalf("seeded %d hearts, want %d", len(c.hearts), constants.CelebrationHearts)
	}

	before := make([]float64, len(c.hearts))
	for i, h := range c.hearts {
		before[i] = h.y
	}

	c.update(testNow, testNow.Add(100*time.Millisecond), 80, 24)
	for i, h := range c.hearts {
		if h.y >= before[i] && h.y < 24-1 {
			t.Errorf("heart %d did not rise: %v -> %v", i, before[i], h.y)
		}
	}

	// A new win reseeds the field
	c.update(testNow.Add(time.Minute), testNow.Add(time.Minute), 80, 24)
	if !c.wonAt.Equal(testNow.Add(time.Minute)) {
		t.Error("field should track the latest win")
	}

	c.reset()
	if len(c.hearts) != 0 || c.active {
		t.Error("reset should clear the field")
	}
}

package render

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/love-tap/config"
	"github.com/lixenwraith/love-tap/constants"
	"github.com/lixenwraith/love-tap/engine"
)

// Renderer draws game snapshots to a terminal screen.
// It is not safe for concurrent use; the frame loop owns it.
type Renderer struct {
	screen tcell.Screen
	cast   *config.Cast
	upper  cases.Caser

	celebration *celebration

	button        buttonRect
	buttonVisible bool
}

type buttonRect struct {
	x, y, width int
}

// NewRenderer creates a renderer for the given cast
func NewRenderer(screen tcell.Screen, cast *config.Cast) *Renderer {
	if cast == nil {
		cast = config.DefaultCast()
	}
	return &Renderer{
		screen:      screen,
		cast:        cast,
		upper:       cases.Upper(language.Und),
		celebration: newCelebration(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

// Draw renders one frame from snap at wall time now
func (r *Renderer) Draw(snap engine.Snapshot, now time.Time) {
	width, height := r.screen.Size()
	bg := tcell.StyleDefault.Background(toTcell(ColBackground)).Foreground(toTcell(ColText))

	fill(r.screen, 0, 0, width, height, bg)

	r.drawHUD(snap, width, bg)
	r.drawCharacters(snap, now, bg)
	r.drawProjectiles(snap, bg)
	r.drawParticles(snap, bg)
	if height > 0 {
		drawCentered(r.screen, width/2, height-1, constants.HintText, bg)
	}

	r.buttonVisible = false
	if snap.Won {
		r.drawCelebration(snap, now, width, height)
	} else {
		r.celebration.reset()
	}

	r.screen.Show()
}

// ButtonHit reports whether a click at cell (x, y) lands on the Play Again button
func (r *Renderer) ButtonHit(x, y int) bool {
	if !r.buttonVisible {
		return false
	}
	return y == r.button.y && x >= r.button.x && x < r.button.x+r.button.width
}

func (r *Renderer) drawHUD(snap engine.Snapshot, width int, bg tcell.Style) {
	cx := width / 2
	row := constants.HUDRow

	counter := fmt.Sprintf("Kisses: %d / %d", snap.Hits, snap.Target)
	drawCentered(r.screen, cx, row, counter, bg.Foreground(toTcell(ColAccent)).Bold(true))

	if snap.Combo > 1 {
		combo := fmt.Sprintf("%s %dx COMBO!", constants.ComboGlyph, snap.Combo)
		drawCentered(r.screen, cx, row+1, combo, bg.Foreground(toTcell(ColCombo)).Bold(true))
	}

	r.drawProgressBar(snap.Progress(), cx, row+2, bg)
}

func (r *Renderer) drawProgressBar(progress float64, cx, y int, bg tcell.Style) {
	filled := int(math.Round(progress * constants.ProgressBarWidth))
	x := cx - constants.ProgressBarWidth/2

	fullStyle := bg.Foreground(toTcell(ColAccent))
	emptyStyle := bg.Foreground(toTcell(ColBarEmpty))
	for i := 0; i < constants.ProgressBarWidth; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, '█', nil, fullStyle)
		} else {
			r.screen.SetContent(x+i, y, '░', nil, emptyStyle)
		}
	}
}

func (r *Renderer) drawCharacters(snap engine.Snapshot, now time.Time, bg tcell.Style) {
	layout := snap.Layout

	ex, ey := layout.ToCell(layout.EmitterAnchor())
	r.drawCharacter(r.cast.Player1, ex, ey, bg)

	tx, ty := layout.ToCell(layout.TargetAnchor())
	if !snap.LastHitAt.IsZero() {
		tx += ShakeOffset(now.Sub(snap.LastHitAt), snap.Combo)
	}
	r.drawCharacter(r.cast.Player2, tx, ty, bg)
}

func (r *Renderer) drawCharacter(c config.Character, col, row int, bg tcell.Style) {
	drawCentered(r.screen, col, row, c.Emoji, bg)
	drawCentered(r.screen, col, row+1, c.Name, bg.Bold(true))
}

// ShakeOffset is the target's horizontal wobble in cells, elapsed after an accepted hit.
// Amplitude is min(combo, TargetShakeMaxIntensity), at least 1, and decays to 0 over TargetShakeDuration.
func ShakeOffset(elapsed time.Duration, combo int) int {
	if elapsed < 0 || elapsed >= constants.TargetShakeDuration {
		return 0
	}
	intensity := max(1, min(combo, constants.TargetShakeMaxIntensity))
	remaining := 1 - float64(elapsed)/float64(constants.TargetShakeDuration)
	// ~25Hz wobble
	phase := elapsed.Seconds() * 2 * math.Pi * 25
	return int(math.Round(float64(intensity) * remaining * math.Sin(phase)))
}

func (r *Renderer) drawProjectiles(snap engine.Snapshot, bg tcell.Style) {
	for _, p := range snap.Projectiles {
		col, row := snap.Layout.ToCell(p.X, p.Y)
		drawCentered(r.screen, col, row, r.cast.ProjectileGlyph, bg)
	}
}

func (r *Renderer) drawParticles(snap engine.Snapshot, bg tcell.Style) {
	for _, p := range snap.Particles {
		col, row := snap.Layout.ToCell(p.X, p.Y)
		drawCentered(r.screen, col, row, ParticleGlyph(p.Glyph, p.Life), bg.Foreground(ParticleColor(p.Life, ColBackground)))
	}
}

// ParticleGlyph shrinks a particle to a dot once its life drops below FadedLife
func ParticleGlyph(glyph string, life float64) string {
	if life < constants.FadedLife || glyph == "" {
		return constants.FadedGlyph
	}
	return glyph
}

func (r *Renderer) drawCelebration(snap engine.Snapshot, now time.Time, width, height int) {
	overlay := tcell.StyleDefault.Background(toTcell(ColOverlay)).Foreground(toTcell(ColOverlayFg))
	fill(r.screen, 0, 0, width, height, overlay)

	r.celebration.update(snap.WonAt, now, width, height)
	for _, h := range r.celebration.hearts {
		drawText(r.screen, int(h.x), int(h.y), h.glyph, overlay)
	}

	if now.Sub(snap.WonAt) < constants.CelebrationRevealDelay {
		return
	}

	cx, cy := width/2, height/2
	p1, p2 := r.cast.Player1, r.cast.Player2
	names := strings.Join([]string{
		r.upper.String(p1.Name), p1.Emoji, constants.HeartGlyph, p2.Emoji, r.upper.String(p2.Name),
	}, " ")
	drawCentered(r.screen, cx, cy-3, names, overlay.Bold(true))
	drawCentered(r.screen, cx, cy-1, r.cast.Celebration.Title, overlay.Foreground(toTcell(ColAccent)).Bold(true))
	drawCentered(r.screen, cx, cy+1, r.cast.Celebration.Message, overlay)

	buttonStyle := overlay.Background(toTcell(ColAccent)).Foreground(toTcell(ColBackground)).Bold(true)
	bx := drawCentered(r.screen, cx, cy+3, constants.PlayAgainText, buttonStyle)
	r.button = buttonRect{x: bx, y: cy + 3, width: TextWidth(constants.PlayAgainText)}
	r.buttonVisible = true
}

package render

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/love-tap/constants"
)

var heartGlyphs = []string{"💖", "💕", "💗", "💓"}

// heart is a presentation-only glyph drifting up the celebration overlay, in cells
type heart struct {
	x, y  float64
	speed float64 // rows per second
	glyph string
}

// celebration owns the rising-heart field shown after a win.
// The field is seeded once per win and advanced by wall time between frames.
type celebration struct {
	rng    *rand.Rand
	hearts []heart
	wonAt  time.Time
	last   time.Time
	active bool
}

func newCelebration(rng *rand.Rand) *celebration {
	return &celebration{rng: rng}
}

func (c *celebration) reset() {
	c.hearts = c.hearts[:0]
	c.active = false
}

func (c *celebration) update(wonAt, now time.Time, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	if !c.active || !wonAt.Equal(c.wonAt) {
		c.seed(width, height)
		c.wonAt = wonAt
		c.last = now
		c.active = true
		return
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt <= 0 {
		return
	}

	for i := range c.hearts {
		h := &c.hearts[i]
		h.y -= h.speed * dt
		if h.y < 0 {
			h.y += float64(height)
			h.x = c.rng.Float64() * float64(width)
		}
		if h.x >= float64(width) {
			h.x = float64(width - 1)
		}
	}
}

func (c *celebration) seed(width, height int) {
	c.hearts = c.hearts[:0]
	for i := 0; i < constants.CelebrationHearts; i++ {
		c.hearts = append(c.hearts, heart{
			x:     c.rng.Float64() * float64(width),
			y:     c.rng.Float64() * float64(height),
			speed: 2 + c.rng.Float64()*4,
			glyph: heartGlyphs[c.rng.Intn(len(heartGlyphs))],
		})
	}
}

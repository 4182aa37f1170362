package physics

import (
	"time"

	"github.com/lixenwraith/love-tap/constants"
)

// FrameScale converts an elapsed duration into reference frames, so per-frame
// tunables keep the same real-time behavior at any frame rate
func FrameScale(dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return float64(dt) / float64(constants.ReferenceFrame)
}

// Integrate performs explicit Euler integration over f frames: p = p + v*f; v = v + a*f
func Integrate(x, y, vx, vy, ax, ay, f float64) (nx, ny, nvx, nvy float64) {
	return x + vx*f, y + vy*f, vx + ax*f, vy + ay*f
}

package physics

import "math"

// WithinRadius reports whether (x, y) lies strictly inside the circle at (cx, cy).
// A point exactly on the boundary is outside.
func WithinRadius(x, y, cx, cy, radius float64) bool {
	return math.Hypot(x-cx, y-cy) < radius
}

// SegmentWithinRadius reports whether any point of the segment from (x0, y0) to
// (x1, y1) lies strictly inside the circle. A zero-length segment degrades to
// WithinRadius.
func SegmentWithinRadius(x0, y0, x1, y1, cx, cy, radius float64) bool {
	dx, dy := x1-x0, y1-y0
	t := 0.0
	if lenSq := dx*dx + dy*dy; lenSq > 0 {
		t = ((cx-x0)*dx + (cy-y0)*dy) / lenSq
		t = max(0, min(1, t))
	}
	return WithinRadius(x0+t*dx, y0+t*dy, cx, cy, radius)
}

package engine

import "github.com/lixenwraith/love-tap/constants"

// Layout maps the terminal grid onto the logical pixel space the simulation runs in.
// Anchors are fractions of the play area so characters follow the window on resize.
type Layout struct {
	Width, Height float64 // logical pixels

	CellWidth, CellHeight float64

	EmitterX, EmitterY float64 // fractions
	TargetX, TargetY   float64
}

// DefaultLayout returns the default anchors on a fallback-sized area
func DefaultLayout() Layout {
	return Layout{
		Width:      constants.FallbackWidth,
		Height:     constants.FallbackHeight,
		CellWidth:  constants.CellWidth,
		CellHeight: constants.CellHeight,
		EmitterX:   constants.EmitterAnchorX,
		EmitterY:   constants.EmitterAnchorY,
		TargetX:    constants.TargetAnchorX,
		TargetY:    constants.TargetAnchorY,
	}
}

// ResizeCells sets the play area from a terminal size in cells
func (l *Layout) ResizeCells(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	l.Width = float64(cols) * l.CellWidth
	l.Height = float64(rows) * l.CellHeight
}

// EmitterAnchor is where new projectiles spawn
func (l Layout) EmitterAnchor() (x, y float64) {
	return l.Width * l.EmitterX, l.Height * l.EmitterY
}

// TargetAnchor is the center of the target's hit circle
func (l Layout) TargetAnchor() (x, y float64) {
	return l.Width * l.TargetX, l.Height * l.TargetY
}

// ToCell converts a logical position to the terminal cell containing it
func (l Layout) ToCell(x, y float64) (col, row int) {
	return int(x / l.CellWidth), int(y / l.CellHeight)
}

// ToLogical converts a terminal cell to the logical position of its center
func (l Layout) ToLogical(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * l.CellWidth, (float64(row) + 0.5) * l.CellHeight
}

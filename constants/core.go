package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the render/update cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceFrame is the frame length the per-frame tunables are expressed in.
	// Displacements are scaled by dt/ReferenceFrame so motion is frame-rate independent.
	ReferenceFrame = time.Second / 60

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 128
)

// Logical Pixel Space
const (
	// CellWidth is the logical pixel width of one terminal cell
	CellWidth = 8.0

	// CellHeight is the logical pixel height of one terminal cell
	CellHeight = 16.0

	// FallbackWidth and FallbackHeight size the layout before the terminal reports
	FallbackWidth  = 1000.0
	FallbackHeight = 600.0
)

package constants

import "time"

// Glyph Defaults
const (
	ProjectileGlyph = "💋"
	ComboGlyph      = "🔥"
	HeartGlyph      = "💖"

	// FadedGlyph replaces a particle glyph once it has shrunk below FadedLife
	FadedGlyph = "·"
	FadedLife  = 0.3
)

// Palettes holds the default particle glyph palettes
var (
	DefaultPalette      = []string{"💖", "💕", "✨", "💋"}
	DefaultComboPalette = []string{"💖", "💕", "✨", "💋", "🌟", "💫"}
)

// Cast Defaults
const (
	Player1Name  = "Rinni"
	Player1Emoji = "🐰"
	Player2Name  = "Tushar"
	Player2Emoji = "🐻"

	CelebrationTitle   = "I LOVE YOU!"
	CelebrationMessage = "You are the one for me!"
)

// UI Timing
const (
	// TargetShakeDuration is how long the target wobbles after an accepted hit
	TargetShakeDuration = 400 * time.Millisecond

	// TargetShakeMaxIntensity caps the wobble amplitude (in cells) regardless of combo
	TargetShakeMaxIntensity = 5

	// CelebrationRevealDelay is the pause between winning and the overlay text appearing
	CelebrationRevealDelay = 300 * time.Millisecond

	// CelebrationHearts is the size of the overlay's rising-heart field
	CelebrationHearts = 40
)

// UI Layout
const (
	ProgressBarWidth = 30
	HUDRow           = 1
	HintText         = "click or press SPACE to send a kiss  ·  q to quit"
	PlayAgainText    = "[ Play Again 💕 ]"
)

// Colors (hex, parsed by the renderer)
const (
	ColorBackground = "#ffeef8"
	ColorAccent     = "#ff1493"
	ColorCombo      = "#ff6b6b"
	ColorBarEmpty   = "#ffc0cb"
	ColorText       = "#5a2a41"
	ColorOverlay    = "#2b0f1f"
	ColorOverlayFg  = "#ffc0cb"
)

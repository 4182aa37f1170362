package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/love-tap/constants"
)

// Palette colors, kept in colorful space so they can be blended per frame
var (
	ColBackground = mustHex(constants.ColorBackground)
	ColAccent     = mustHex(constants.ColorAccent)
	ColCombo      = mustHex(constants.ColorCombo)
	ColBarEmpty   = mustHex(constants.ColorBarEmpty)
	ColText       = mustHex(constants.ColorText)
	ColOverlay    = mustHex(constants.ColorOverlay)
	ColOverlayFg  = mustHex(constants.ColorOverlayFg)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad palette color " + s)
	}
	return c
}

// toTcell converts a colorful color to a terminal RGB color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade blends from toward to by t in [0, 1]; t is clamped
func Fade(from, to colorful.Color, t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return toTcell(from.BlendRgb(to, t))
}

// ParticleColor fades the accent into the background as life runs out
func ParticleColor(life float64, bg colorful.Color) tcell.Color {
	return Fade(ColAccent, bg, 1-life)
}

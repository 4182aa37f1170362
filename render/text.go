package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TextWidth is the number of terminal cells a string occupies
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// drawText writes s starting at column x, advancing by each rune's display width.
// Zero-width runes (variation selectors, joiners) attach to the previous cell.
// Returns the number of columns consumed.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	col := x
	prevX := -1
	var prev rune
	var comb []rune

	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 && prevX >= 0 {
			comb = append(comb, r)
			screen.SetContent(prevX, y, prev, comb, style)
			continue
		}
		prev, prevX, comb = r, col, nil
		screen.SetContent(col, y, r, nil, style)
		col += w
	}
	return col - x
}

// drawCentered writes s centered on column cx and returns its starting column
func drawCentered(screen tcell.Screen, cx, y int, s string, style tcell.Style) int {
	x := cx - TextWidth(s)/2
	drawText(screen, x, y, s, style)
	return x
}

// fill paints a rectangle with blanks in style
func fill(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

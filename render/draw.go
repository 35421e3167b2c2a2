package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text starting at (x, y), advancing by each rune's cell width
// Returns the column after the last rune
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
	return x
}

// drawCentered writes text centered on the screen width
func drawCentered(screen tcell.Screen, width, y int, text string, style tcell.Style) {
	drawText(screen, (width-runewidth.StringWidth(text))/2, y, text, style)
}

// fillRect paints a rectangle of blanks
func fillRect(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
)

// OverlayLayer draws the pause and game over panels
type OverlayLayer struct{}

func (OverlayLayer) Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen) {
	switch snap.State {
	case engine.StatePaused:
		lines := []overlayLine{
			{constants.TextPaused, RgbPauseTitle, true},
			{"", RgbHint, false},
			{constants.TextPausedHint, RgbHUDText, false},
			{constants.TextSteerHint, RgbHint, false},
		}
		if snap.HandControl {
			lines = append(lines, overlayLine{constants.TextHandHint, RgbHandOn, false})
		}
		drawPanel(ctx, screen, lines)

	case engine.StateGameOver:
		lines := []overlayLine{
			{constants.TextGameOver, RgbGameOver, true},
			{"", RgbHint, false},
			{fmt.Sprintf("Final Score: %d", snap.Score), RgbScore, true},
		}
		if IsNewHighScore(snap) {
			lines = append(lines, overlayLine{constants.TextNewHighScore, RgbNewHighScore, true})
		}
		lines = append(lines,
			overlayLine{"", RgbHint, false},
			overlayLine{constants.TextRestartHint, RgbRestart, true},
			overlayLine{fmt.Sprintf("High Score: %d", snap.BestScore), RgbHint, false},
		)
		drawPanel(ctx, screen, lines)
	}
}

// IsNewHighScore reports whether the finished session set the best score
func IsNewHighScore(snap *engine.Snapshot) bool {
	return snap.Score > 0 && snap.Score >= snap.BestScore
}

type overlayLine struct {
	text  string
	color RGB
	bold  bool
}

func drawPanel(ctx RenderContext, screen tcell.Screen, lines []overlayLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l.text))
	}
	width += 6
	height := len(lines) + 2

	x := (ctx.ScreenWidth - width) / 2
	y := (ctx.ScreenHeight - height) / 2
	bg := RgbOverlayBg.Color()
	fillRect(screen, x, y, width, height, tcell.StyleDefault.Background(bg))

	for i, l := range lines {
		if l.text == "" {
			continue
		}
		style := tcell.StyleDefault.Foreground(l.color.Color()).Background(bg).Bold(l.bold)
		drawCentered(screen, ctx.ScreenWidth, y+1+i, l.text, style)
	}
}

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
)

// HUDLayer draws score, combo and best on row 0 and the health gauge on row 1
type HUDLayer struct{}

func (HUDLayer) Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen) {
	bg := RgbBackground.Color()
	scoreStyle := tcell.StyleDefault.Foreground(RgbScore.Color()).Background(bg).Bold(true)
	comboStyle := tcell.StyleDefault.Foreground(RgbCombo.Color()).Background(bg).Bold(true)
	bestStyle := tcell.StyleDefault.Foreground(RgbBest.Color()).Background(bg)
	textStyle := tcell.StyleDefault.Foreground(RgbHUDText.Color()).Background(bg)

	x := drawText(screen, 1, 0, fmt.Sprintf("SCORE: %d", snap.Score), scoreStyle)
	if snap.Combo > 1 {
		drawText(screen, x+2, 0, fmt.Sprintf("COMBO x%d!", snap.Combo), comboStyle)
	}

	best := fmt.Sprintf("HIGH SCORE: %d", snap.BestScore)
	drawText(screen, ctx.ScreenWidth-runewidth.StringWidth(best)-1, 0, best, bestStyle)

	x = drawText(screen, 1, 1, "HP ", textStyle)
	x = drawHealthBar(screen, x, 1, snap, bg)
	drawText(screen, x+1, 1, fmt.Sprintf("%d/%d", snap.Health, snap.MaxHealth), textStyle)

	speed := fmt.Sprintf("SPEED %.2f", snap.Speed)
	drawText(screen, ctx.ScreenWidth-runewidth.StringWidth(speed)-1, 1, speed, textStyle)
}

// drawHealthBar draws the gauge with a red frame during the hit flash, returns the next column
func drawHealthBar(screen tcell.Screen, x, y int, snap *engine.Snapshot, bg tcell.Color) int {
	frame := tcell.StyleDefault.Foreground(RgbHUDText.Color()).Background(bg)
	if snap.HitFlash {
		frame = frame.Foreground(RgbHitBorder.Color())
	}
	fill := tcell.StyleDefault.Foreground(HealthColor(snap.HealthFraction()).Color()).Background(bg)
	empty := tcell.StyleDefault.Foreground(RgbBarEmpty.Color()).Background(bg)

	filled := HealthCells(snap.HealthFraction(), constants.HealthBarWidth)

	screen.SetContent(x, y, '[', nil, frame)
	for i := 0; i < constants.HealthBarWidth; i++ {
		if i < filled {
			screen.SetContent(x+1+i, y, constants.GlyphBarFull, nil, fill)
		} else {
			screen.SetContent(x+1+i, y, constants.GlyphBarEmpty, nil, empty)
		}
	}
	screen.SetContent(x+1+constants.HealthBarWidth, y, ']', nil, frame)
	return x + constants.HealthBarWidth + 2
}

// HealthCells returns how many of width cells a health fraction fills; any health left shows at least one
func HealthCells(fraction float64, width int) int {
	if fraction <= 0 {
		return 0
	}
	return min(width, max(1, int(math.Round(fraction*float64(width)))))
}

// StatusLayer draws the control source and steering gauge on the last row
type StatusLayer struct{}

func (StatusLayer) Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen) {
	y := ctx.ScreenHeight - 1
	bg := RgbBackground.Color()
	textStyle := tcell.StyleDefault.Foreground(RgbStatusText.Color()).Background(bg)

	source, sourceStyle := "KEYS", textStyle
	if snap.HandControl {
		source, sourceStyle = "HAND", textStyle.Foreground(RgbHandOn.Color()).Bold(true)
	}
	x := drawText(screen, 1, y, source, sourceStyle)
	x = drawText(screen, x+1, y, SteeringGauge(snap.Steering, constants.SteeringGaugeWidth), textStyle)

	hint := "h hand  m mute  p pause  q quit"
	if hx := ctx.ScreenWidth - len(hint) - 1; hx > x+1 {
		drawText(screen, hx, y, hint, textStyle)
	}
}

// SteeringGauge renders steering in [-1, 1] as a track with a marker
func SteeringGauge(steering float64, width int) string {
	if width < 3 {
		width = 3
	}
	if math.IsNaN(steering) {
		steering = 0
	}
	steering = math.Max(-1, math.Min(1, steering))
	pos := int(math.Round((steering + 1) / 2 * float64(width-1)))

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i == pos {
			b.WriteRune(constants.GlyphGaugeMark)
		} else {
			b.WriteRune(constants.GlyphGaugeTrack)
		}
	}
	return b.String()
}

// DebugLayer prints the metrics summary above the status row
type DebugLayer struct {
	Visible func() bool
}

func (d DebugLayer) IsVisible() bool { return d.Visible != nil && d.Visible() }

func (DebugLayer) Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen) {
	style := tcell.StyleDefault.Foreground(RgbDebug.Color()).Background(RgbBackground.Color())
	line := fmt.Sprintf("t=%.1f tick=%d items=%d fx=%d spawn=%s %s",
		snap.Now, snap.Tick, len(snap.Items), len(snap.Effects), snap.SpawnInterval, snap.Metrics)
	drawText(screen, 0, ctx.ScreenHeight-2, runewidth.Truncate(line, ctx.ScreenWidth, ""), style)
}

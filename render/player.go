package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
)

// tiltThreshold is the lean past which the antenna glyph bends
const tiltThreshold = 0.1

// PlayerLayer draws the snail, its antenna lean and a ground shadow while airborne
type PlayerLayer struct{}

func (PlayerLayer) Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen) {
	p := ctx.Proj
	col := p.Column(snap.Player.X, 0) + ctx.ShakeX
	row := max(p.PlayerRow-p.Lift(snap.Player.Y), p.Top+1)

	body := RgbSnail
	// Blink while the hit flash is raised
	if snap.HitFlash && snap.Tick%4 < 2 {
		body = RgbSnailHit
	}
	style := tcell.StyleDefault.Foreground(body.Color()).Background(RgbRoad.Color()).Bold(true)

	if snap.Player.Airborne && row < p.PlayerRow {
		shadow := tcell.StyleDefault.Foreground(RgbSnailShade.Color()).Background(RgbRoad.Color())
		screen.SetContent(col, p.PlayerRow, constants.GlyphSnailShadow, nil, shadow)
	}

	screen.SetContent(col, row, constants.GlyphSnail, nil, style)
	screen.SetContent(col, row-1, AntennaGlyph(snap.Player.Tilt), nil, style)
}

// AntennaGlyph leans with the steering tilt
func AntennaGlyph(tilt float64) rune {
	switch {
	case tilt > tiltThreshold:
		return '/'
	case tilt < -tiltThreshold:
		return '\\'
	default:
		return '|'
	}
}

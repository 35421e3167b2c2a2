package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
)

// EffectLook is how an effect is drawn at a given age
type EffectLook struct {
	Visible bool
	Alpha   float64 // 1 fresh, 0 gone
	Rise    float64 // Elevation gained since creation
	Scale   float64
}

// EffectCurve returns the presentation of an effect kind at age seconds
// Effects disappear after EffectVisibleFor even though the set keeps them until their lifetime ends
func EffectCurve(kind engine.EffectKind, age float64) EffectLook {
	visibleFor := constants.EffectVisibleFor.Seconds()
	if age < 0 || age > visibleFor {
		return EffectLook{}
	}
	alpha := 1 - age/visibleFor

	switch kind {
	case engine.EffectPopup:
		return EffectLook{Visible: true, Alpha: alpha, Rise: age * constants.PopupRise, Scale: 1 + age*0.5}
	case engine.EffectHazard:
		return EffectLook{Visible: true, Alpha: alpha, Scale: 1 + age*constants.BurstGrowth}
	default:
		return EffectLook{Visible: true, Alpha: alpha, Rise: age * constants.BurstRise, Scale: 1 + age*constants.BurstGrowth}
	}
}

// EffectsLayer draws collection bursts, hazard bursts and score popups
type EffectsLayer struct{}

func (EffectsLayer) Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen) {
	for _, e := range snap.Effects {
		look := EffectCurve(e.Kind, e.Age(snap.Now))
		if !look.Visible {
			continue
		}

		col, row, ok := ctx.Proj.Point(e.X, e.Y+look.Rise, e.Z)
		if !ok {
			continue
		}
		col += ctx.ShakeX

		switch e.Kind {
		case engine.EffectPopup:
			text := "+" + strconv.Itoa(e.Value)
			style := tcell.StyleDefault.
				Foreground(RgbBackground.Blend(RgbPopup, look.Alpha).Color()).
				Background(RgbBackground.Color()).
				Bold(look.Alpha > 0.5)
			drawText(screen, col-len(text)/2, row, text, style)

		case engine.EffectHazard:
			style := tcell.StyleDefault.
				Foreground(RgbBackground.Blend(RgbBurstHazard, look.Alpha).Color()).
				Background(RgbBackground.Color())
			drawBurst(screen, col, row, look.Scale, constants.GlyphHazardBurst, style)

		default:
			style := tcell.StyleDefault.
				Foreground(RgbBackground.Blend(RgbBurstCollect, look.Alpha).Color()).
				Background(RgbBackground.Color())
			glyph := constants.GlyphBurstLarge
			if look.Scale > 2 {
				glyph = constants.GlyphBurstSmall
			}
			drawBurst(screen, col, row, look.Scale, glyph, style)
		}
	}
}

// drawBurst draws a center glyph and, once grown, four spokes at distance floor(scale)
func drawBurst(screen tcell.Screen, col, row int, scale float64, glyph rune, style tcell.Style) {
	screen.SetContent(col, row, glyph, nil, style)
	r := int(scale)
	if r < 2 {
		return
	}
	screen.SetContent(col-r, row, glyph, nil, style)
	screen.SetContent(col+r, row, glyph, nil, style)
	screen.SetContent(col, row-r/2, glyph, nil, style)
	screen.SetContent(col, row+r/2, glyph, nil, style)
}

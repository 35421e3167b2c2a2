package render

import (
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
)

// ItemsLayer draws mail and salt, far to near so closer items overdraw
type ItemsLayer struct{}

func (ItemsLayer) Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen) {
	// Snapshot slices are shared with other readers; sort a copy
	items := slices.Clone(snap.Items)
	slices.SortFunc(items, func(a, b engine.Item) int { return cmp.Compare(a.Z, b.Z) })

	for _, it := range items {
		row, ok := ctx.Proj.Row(it.Z)
		if !ok || row < ctx.Proj.Top {
			continue
		}
		col := ctx.Proj.Column(it.X, it.Z) + ctx.ShakeX
		scale := ctx.Proj.Scale(it.Z)

		base := RgbMail
		if it.Kind == engine.KindHazard {
			base = RgbSalt
		}
		glyph := ItemGlyph(it.Kind, scale)

		style := tcell.StyleDefault.
			Foreground(RgbRoad.Blend(base, 0.35+0.65*scale).Color()).
			Background(RgbRoad.Color())
		screen.SetContent(col, row, glyph, nil, style)
	}
}

// ItemGlyph returns the glyph drawn for an item at perspective scale
func ItemGlyph(kind engine.ItemKind, scale float64) rune {
	switch {
	case scale < constants.FarScale:
		return constants.GlyphFar
	case kind == engine.KindHazard:
		return constants.GlyphSalt
	default:
		return constants.GlyphMail
	}
}

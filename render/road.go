package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
)

// laneMarkRate is how many rows per game second the center marks scroll
const laneMarkRate = 8.0

// RoadLayer draws the road surface, its edges and the scrolling center marks
type RoadLayer struct{}

func (RoadLayer) Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen) {
	p := ctx.Proj
	surface := tcell.StyleDefault.Background(RgbRoad.Color())
	edge := tcell.StyleDefault.Foreground(RgbRoadEdge.Color()).Background(RgbBackground.Color())
	mark := tcell.StyleDefault.Foreground(RgbLaneMark.Color()).Background(RgbRoad.Color())

	scroll := int(math.Floor(snap.Now * laneMarkRate))

	for row := p.Top; row <= p.Bottom; row++ {
		left, right := p.EdgeColumns(row)
		left += ctx.ShakeX
		right += ctx.ShakeX

		for col := left + 1; col < right; col++ {
			screen.SetContent(col, row, ' ', nil, surface)
		}
		screen.SetContent(left, row, constants.GlyphRoadEdge, nil, edge)
		screen.SetContent(right, row, constants.GlyphRoadEdge, nil, edge)

		if ((row-scroll)%3+3)%3 == 0 {
			screen.SetContent(p.CenterX+ctx.ShakeX, row, constants.GlyphLaneMark, nil, mark)
		}
	}
}

package render

import (
	"math"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
	"github.com/olsujabu/snailgame/vmath"
)

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Proj maps world coordinates onto the road area
	Proj Projection

	// ShakeX is the camera shake column offset for this frame
	ShakeX int

	Debug bool
}

// NewRenderContext derives the per-frame context from screen size and snapshot
func NewRenderContext(width, height int, snap *engine.Snapshot, debug bool) RenderContext {
	ctx := RenderContext{
		ScreenWidth:  width,
		ScreenHeight: height,
		Proj:         NewProjection(width, height, snap),
		Debug:        debug,
	}
	if snap.Shake {
		// Alternate one column left/right every other tick
		if (snap.Tick/2)%2 == 0 {
			ctx.ShakeX = 1
		} else {
			ctx.ShakeX = -1
		}
	}
	return ctx
}

// Projection maps lane coordinates (X lateral, Z forward, Y elevation) to screen cells
// Rows ahead of the player are depth-compressed toward the horizon; rows behind are linear
type Projection struct {
	Top       int // Horizon row, where items spawn
	Bottom    int // Last road row, where items are discarded
	PlayerRow int // Row of Z = 0
	CenterX   int
	HalfWidth int // Road half-width in columns at the player row

	laneHalf      float64
	spawnDistance float64
	retainLimit   float64
	groundHeight  float64
}

func NewProjection(width, height int, snap *engine.Snapshot) Projection {
	top := constants.HUDRows
	bottom := height - constants.StatusRows - 1
	playerRow := max(bottom-constants.PlayerRowsFromBottom, top+1)

	p := Projection{
		Top:           top,
		Bottom:        bottom,
		PlayerRow:     playerRow,
		CenterX:       width / 2,
		HalfWidth:     max(constants.RoadMinHalfWidth, (width-2)/3),
		laneHalf:      snap.LaneWidth / 2,
		spawnDistance: snap.SpawnDistance,
		retainLimit:   snap.RetainLimit,
		groundHeight:  snap.GroundHeight,
	}
	if p.laneHalf <= 0 {
		p.laneHalf = 1
	}
	if p.spawnDistance >= 0 {
		p.spawnDistance = -1
	}
	if p.retainLimit <= 0 {
		p.retainLimit = 1
	}
	return p
}

// depth is 0 at the player and 1 at the spawn distance
func (p Projection) depth(z float64) float64 {
	if z >= 0 {
		return 0
	}
	return math.Sqrt(vmath.Clamp(z/p.spawnDistance, 0, 1))
}

// Row returns the screen row for forward distance z
func (p Projection) Row(z float64) (int, bool) {
	if z <= 0 {
		if z < p.spawnDistance {
			return 0, false
		}
		return p.PlayerRow - int(math.Round(float64(p.PlayerRow-p.Top)*p.depth(z))), true
	}
	row := p.PlayerRow + int(math.Round(float64(p.Bottom-p.PlayerRow)*z/p.retainLimit))
	return row, row <= p.Bottom
}

// Scale is the perspective size factor at z, HorizonScale at the spawn distance and 1 from the player on
func (p Projection) Scale(z float64) float64 {
	return 1 - (1-constants.HorizonScale)*p.depth(z)
}

// RowScale is the perspective factor of a road row
func (p Projection) RowScale(row int) float64 {
	if row >= p.PlayerRow || p.PlayerRow == p.Top {
		return 1
	}
	t := vmath.Clamp(float64(p.PlayerRow-row)/float64(p.PlayerRow-p.Top), 0, 1)
	return 1 - (1-constants.HorizonScale)*t
}

// Column returns the screen column for lateral offset x at distance z
func (p Projection) Column(x, z float64) int {
	return p.CenterX + int(math.Round(x/p.laneHalf*float64(p.HalfWidth)*p.Scale(z)))
}

// EdgeColumns returns the road edge columns of a row
func (p Projection) EdgeColumns(row int) (int, int) {
	half := int(math.Round(float64(p.HalfWidth) * p.RowScale(row)))
	return p.CenterX - half - 1, p.CenterX + half + 1
}

// Lift converts elevation above ground into rows, never negative
func (p Projection) Lift(y float64) int {
	return max(0, int(math.Round((y-p.groundHeight)*constants.LiftRowsPerUnit)))
}

// Point projects a world position; ok is false when it falls outside the road area
func (p Projection) Point(x, y, z float64) (col, row int, ok bool) {
	row, ok = p.Row(z)
	if !ok {
		return 0, 0, false
	}
	row -= p.Lift(y)
	return p.Column(x, z), row, row >= p.Top
}

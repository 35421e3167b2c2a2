package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/olsujabu/snailgame/engine"
)

// Layer draws one part of the frame from an immutable snapshot
type Layer interface {
	Render(ctx RenderContext, snap *engine.Snapshot, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

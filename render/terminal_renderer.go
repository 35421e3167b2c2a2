package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/engine"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// TerminalRenderer draws snapshots to a tcell screen through an ordered layer pipeline
// Draw is called from the UI goroutine only
type TerminalRenderer struct {
	screen   tcell.Screen
	layers   []layerEntry
	regCount int
	debug    bool
	frames   uint64
}

// NewTerminalRenderer creates a renderer with the standard layer set registered
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		layers: make([]layerEntry, 0, 8),
	}
	r.Register(RoadLayer{}, PriorityRoad)
	r.Register(ItemsLayer{}, PriorityItems)
	r.Register(PlayerLayer{}, PriorityPlayer)
	r.Register(EffectsLayer{}, PriorityEffects)
	r.Register(HUDLayer{}, PriorityUI)
	r.Register(StatusLayer{}, PriorityUI)
	r.Register(OverlayLayer{}, PriorityOverlay)
	r.Register(DebugLayer{Visible: r.Debug}, PriorityDebug)
	return r
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (r *TerminalRenderer) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    r.regCount,
	}
	r.regCount++

	pos := len(r.layers)
	for i, e := range r.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	r.layers = append(r.layers, layerEntry{})
	copy(r.layers[pos+1:], r.layers[pos:])
	r.layers[pos] = entry
}

// SetDebug toggles the metrics line
func (r *TerminalRenderer) SetDebug(on bool) { r.debug = on }

func (r *TerminalRenderer) ToggleDebug() bool {
	r.debug = !r.debug
	return r.debug
}

func (r *TerminalRenderer) Debug() bool { return r.debug }

// Frames returns the number of frames drawn
func (r *TerminalRenderer) Frames() uint64 { return r.frames }

// Resize resynchronizes the screen after a terminal size change
func (r *TerminalRenderer) Resize() {
	r.screen.Sync()
}

// Draw renders one frame: clear, all visible layers in priority order, show
// A nil snapshot draws nothing
func (r *TerminalRenderer) Draw(snap *engine.Snapshot) {
	if snap == nil {
		return
	}
	width, height := r.screen.Size()

	r.screen.SetStyle(tcell.StyleDefault.Background(RgbBackground.Color()))
	r.screen.Clear()

	if width < constants.MinScreenWidth || height < constants.MinScreenHeight {
		drawCentered(r.screen, width, height/2, constants.TextTooSmall,
			tcell.StyleDefault.Foreground(RgbHUDText.Color()).Background(RgbBackground.Color()))
		r.screen.Show()
		r.frames++
		return
	}

	ctx := NewRenderContext(width, height, snap, r.debug)
	for _, entry := range r.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, snap, r.screen)
	}

	r.screen.Show()
	r.frames++
}

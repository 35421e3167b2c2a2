package input

import (
	"sync/atomic"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/status"
	"github.com/olsujabu/snailgame/vmath"
)

// Normalizer reduces pointer, keyboard and hand-tracking signals to one steering value in [-1, 1]
// Writers run on the UI and network goroutines; the scheduler samples it once per tick without blocking
// Pointer and keys steer unless hand control is on, in which case only hand positions do
type Normalizer struct {
	steering status.AtomicFloat
	hand     atomic.Bool

	jump   atomic.Bool
	resume atomic.Bool
	pause  atomic.Bool

	gesture     atomic.Uint32
	handUpdates atomic.Uint64
}

// NewNormalizer creates a centered normalizer with hand control off
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Steering returns the current steering value
func (n *Normalizer) Steering() float64 {
	return n.steering.Get()
}

// Nudge shifts steering by delta and clamps; ignored under hand control
func (n *Normalizer) Nudge(delta float64) {
	if n.hand.Load() || !vmath.IsFinite(delta) {
		return
	}
	n.steering.Update(func(v float64) float64 {
		return vmath.Clamp(v+delta, -1, 1)
	})
}

// NudgeLeft and NudgeRight apply one NudgeStep
func (n *Normalizer) NudgeLeft()  { n.Nudge(-constants.NudgeStep) }
func (n *Normalizer) NudgeRight() { n.Nudge(constants.NudgeStep) }

// Pointer maps a column in [0, width) to [-1, 1]; ignored under hand control
func (n *Normalizer) Pointer(x, width int) {
	if n.hand.Load() || width <= 0 {
		return
	}
	n.steering.Set(vmath.Clamp(float64(x)/float64(width)*2-1, -1, 1))
}

// Hand sets steering from a tracked hand position in [-1, 1]
// Out-of-range values are clamped, non-finite values dropped; ignored unless hand control is on
func (n *Normalizer) Hand(x float64) {
	if !n.hand.Load() || !vmath.IsFinite(x) {
		return
	}
	n.steering.Set(vmath.Clamp(x, -1, 1))
	n.handUpdates.Add(1)
}

// SetHandControl switches the steering source; disabling recenters
func (n *Normalizer) SetHandControl(on bool) {
	if n.hand.Swap(on) && !on {
		n.steering.Set(0)
		n.gesture.Store(uint32(GestureNone))
	}
}

// ToggleHandControl flips hand control and returns the new setting
func (n *Normalizer) ToggleHandControl() bool {
	on := !n.hand.Load()
	n.SetHandControl(on)
	return on
}

// HandControl reports whether hand tracking drives steering
func (n *Normalizer) HandControl() bool {
	return n.hand.Load()
}

// HandUpdates returns the number of accepted hand positions
func (n *Normalizer) HandUpdates() uint64 {
	return n.handUpdates.Load()
}

// Gesture records a classified gesture and latches its action; ignored unless hand control is on
func (n *Normalizer) Gesture(g Gesture) {
	if !n.hand.Load() {
		return
	}
	n.gesture.Store(uint32(g))
	switch g.Action() {
	case GestureActionJump:
		n.jump.Store(true)
	case GestureActionResume:
		n.resume.Store(true)
	case GestureActionPause:
		n.pause.Store(true)
	}
}

// LastGesture returns the most recent gesture
func (n *Normalizer) LastGesture() Gesture {
	return Gesture(n.gesture.Load())
}

// RequestJump latches a jump for the next tick
func (n *Normalizer) RequestJump() {
	n.jump.Store(true)
}

// TakeJump consumes a latched jump request
func (n *Normalizer) TakeJump() bool {
	return n.jump.Swap(false)
}

// TakeResume consumes a latched resume request
func (n *Normalizer) TakeResume() bool {
	return n.resume.Swap(false)
}

// TakePause consumes a latched pause request
func (n *Normalizer) TakePause() bool {
	return n.pause.Swap(false)
}

// Recenter zeroes steering and drops pending requests
func (n *Normalizer) Recenter() {
	n.steering.Set(0)
	n.jump.Store(false)
	n.resume.Store(false)
	n.pause.Store(false)
}

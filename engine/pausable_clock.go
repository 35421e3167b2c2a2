package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stops while the session is not playing
// The scheduler derives tick dt from it so a long pause never arrives as one huge step
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startReal time.Time

	paused          bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock over provider; nil uses the monotonic system clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startReal: provider.Now(),
	}
}

// Now returns current game time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	ref := pc.provider.Now()
	if pc.paused {
		ref = pc.pauseStart
	}
	return pc.startReal.Add(ref.Sub(pc.startReal) - pc.totalPausedTime)
}

// RealTime returns the provider's time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues game time advancement; repeated calls are no-ops
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}

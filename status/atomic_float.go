package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat provides atomic float64 access via bit conversion
// Zero value is ready to use (0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add atomically adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.Update(func(v float64) float64 { return v + delta })
}

// Update applies fn with CAS retry and returns the stored result
// fn may run more than once under contention and must be pure
func (f *AtomicFloat) Update(fn func(float64) float64) float64 {
	for {
		old := f.bits.Load()
		next := fn(math.Float64frombits(old))
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

package engine

// Combo is the time-windowed pickup streak
// Decay is lazy: a stale streak is only noticed at the next pickup
type Combo struct {
	count      int
	lastPickup float64 // Simulation seconds of the last pickup
	hasPickup  bool
}

// Pickup registers a collectible at time now and returns the new streak value
// A pickup within timeout of the previous one extends the streak, otherwise it restarts at 1
func (c *Combo) Pickup(now, timeout float64) int {
	if c.hasPickup && now-c.lastPickup < timeout {
		c.count++
	} else {
		c.count = 1
	}
	c.lastPickup = now
	c.hasPickup = true
	return c.count
}

// Break zeroes the streak after hazard damage
// The last pickup time is kept; the next pickup compares against it
func (c *Combo) Break() {
	c.count = 0
}

// Value returns the current streak
func (c *Combo) Value() int {
	return c.count
}

// Reset clears all streak state for a new session
func (c *Combo) Reset() {
	*c = Combo{}
}

package engine

// EffectKind discriminates transient feedback entities
type EffectKind uint8

const (
	EffectCollect EffectKind = iota // Burst at a collected item
	EffectHazard                    // Burst at a hazard that hit the player
	EffectPopup                     // Floating score text
)

func (k EffectKind) String() string {
	switch k {
	case EffectCollect:
		return "collect"
	case EffectHazard:
		return "hazard"
	case EffectPopup:
		return "popup"
	}
	return "unknown"
}

// Effect is a short-lived visual feedback entity
// Never mutated after creation; presentation derives scale and fade from its age
type Effect struct {
	ID        uint64
	Kind      EffectKind
	X, Y, Z   float64
	Value     int     // Points shown by popups
	CreatedAt float64 // Simulation seconds
}

// Age returns seconds since creation
func (e Effect) Age(now float64) float64 {
	return now - e.CreatedAt
}

// EffectSet is the append-only collection of live effects
type EffectSet struct {
	lifetime float64
	nextID   uint64
	effects  []Effect
}

// NewEffectSet creates a set whose effects expire after lifetime seconds
func NewEffectSet(lifetime float64) *EffectSet {
	return &EffectSet{
		lifetime: lifetime,
		effects:  make([]Effect, 0, 16),
	}
}

// Add records a new effect and returns its ID
func (s *EffectSet) Add(kind EffectKind, x, y, z float64, value int, now float64) uint64 {
	s.nextID++
	s.effects = append(s.effects, Effect{
		ID:        s.nextID,
		Kind:      kind,
		X:         x,
		Y:         y,
		Z:         z,
		Value:     value,
		CreatedAt: now,
	})
	return s.nextID
}

// Expire drops every effect whose age reached the lifetime and returns how many were removed
func (s *EffectSet) Expire(now float64) int {
	kept := s.effects[:0]
	for _, e := range s.effects {
		if e.Age(now) < s.lifetime {
			kept = append(kept, e)
		}
	}
	removed := len(s.effects) - len(kept)
	clear(s.effects[len(kept):])
	s.effects = kept
	return removed
}

// Active returns a copy of the live effects
func (s *EffectSet) Active() []Effect {
	out := make([]Effect, len(s.effects))
	copy(out, s.effects)
	return out
}

// Len returns the number of live effects
func (s *EffectSet) Len() int {
	return len(s.effects)
}

// Clear removes all effects; IDs keep increasing
func (s *EffectSet) Clear() {
	clear(s.effects)
	s.effects = s.effects[:0]
}

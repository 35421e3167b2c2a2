package engine

// ItemKind discriminates spawned entities
type ItemKind uint8

const (
	KindCollectible ItemKind = iota // Mail: awards points and builds combo
	KindHazard                      // Salt: damages and breaks combo
)

func (k ItemKind) String() string {
	switch k {
	case KindCollectible:
		return "collectible"
	case KindHazard:
		return "hazard"
	}
	return "unknown"
}

// Item is a spawned entity travelling toward the player
// Z starts at SpawnDistance (negative, ahead) and grows each tick; the player sits at Z=0
type Item struct {
	ID   uint64
	Kind ItemKind
	X    float64 // Lateral offset within ±LaneWidth/2
	Z    float64 // Forward distance
}

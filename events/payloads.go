package events

// CollectPayload describes a resolved collectible pickup
type CollectPayload struct {
	ItemID uint64
	Points int
	Combo  int
	Score  int // Score after the pickup
	X, Z   float64
}

// HitPayload describes a resolved hazard collision
type HitPayload struct {
	ItemID uint64
	Damage int
	Health int // Health after the hit
	X, Z   float64
}

// GameOverPayload carries the final session score
type GameOverPayload struct {
	Score int
}

// StateChangePayload carries a session state transition by name
type StateChangePayload struct {
	From string
	To   string
}

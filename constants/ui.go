package constants

import "time"

// Screen Layout
const (
	// HUDRows are reserved at the top for score and health
	HUDRows = 2

	// StatusRows are reserved at the bottom for the control/debug line
	StatusRows = 1

	// MinScreenWidth and MinScreenHeight below which only a resize hint is drawn
	MinScreenWidth  = 30
	MinScreenHeight = 12

	// PlayerRowsFromBottom places the player row above the bottom of the road
	PlayerRowsFromBottom = 3

	// RoadMinHalfWidth is the smallest half-width in columns at the player row
	RoadMinHalfWidth = 6

	// HorizonScale is the road width at the spawn distance relative to the player row
	HorizonScale = 0.2

	// LiftRowsPerUnit converts elevation above ground into screen rows
	LiftRowsPerUnit = 1.5

	// HealthBarWidth is the width of the HUD health gauge in cells
	HealthBarWidth = 20

	// SteeringGaugeWidth is the width of the status-line steering gauge
	SteeringGaugeWidth = 21
)

// Effect Presentation
const (
	// EffectVisibleFor is how long bursts and popups are drawn; they stay in the set until EffectLifetime
	EffectVisibleFor = time.Second

	// BurstRise and PopupRise are elevation gained per second of age
	BurstRise = 2.0
	PopupRise = 3.0

	// BurstGrowth is the burst scale gained per second of age
	BurstGrowth = 2.0

	// FarScale below which items are drawn as distant dots
	FarScale = 0.4
)

// Glyphs
const (
	GlyphSnail       = '@'
	GlyphSnailShadow = '_'
	GlyphMail        = '✉'
	GlyphSalt        = '◆'
	GlyphFar         = '·'
	GlyphRoadEdge    = '│'
	GlyphLaneMark    = '╎'
	GlyphBurstSmall  = '*'
	GlyphBurstLarge  = '✦'
	GlyphHazardBurst = '✖'
	GlyphBarFull     = '█'
	GlyphBarEmpty    = '░'
	GlyphGaugeMark   = '┃'
	GlyphGaugeTrack  = '─'
)

// Overlay Text
const (
	TextPaused       = "PAUSED"
	TextPausedHint   = "Press ESC or P to resume"
	TextSteerHint    = "Use mouse or arrow keys to steer"
	TextHandHint     = "Thumb up to resume"
	TextGameOver     = "GAME OVER"
	TextNewHighScore = "NEW HIGH SCORE!"
	TextRestartHint  = "RESTART (ENTER)"
	TextTooSmall     = "Enlarge terminal"
)

package engine

import (
	"math"
	"time"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/vmath"
)

// Player is the presentation-side kinematic state fed into TickInput
// Steering is eased toward its target; jumps follow a per-tick ballistic arc
type Player struct {
	tuning Tuning

	X      float64
	Height float64 // Jump height above ground
	VY     float64
	Tilt   float64

	airborne bool
	bob      float64
	elapsed  float64
}

// NewPlayer creates a grounded player at lane center
func NewPlayer(t Tuning) *Player {
	return &Player{tuning: t}
}

// Update eases toward steering*LaneWidth/2 and integrates the jump arc
// Returns true on the tick a jump starts
func (p *Player) Update(dt time.Duration, steering float64, jump bool) bool {
	if !vmath.IsFinite(steering) {
		steering = 0
	}
	steering = vmath.Clamp(steering, -1, 1)

	target := steering * p.tuning.LaneWidth / 2
	p.X = vmath.Lerp(p.X, target, p.tuning.SteeringSpeed)
	p.Tilt = vmath.Lerp(p.Tilt, (p.X-target)*-0.5, 0.1)
	p.elapsed += dt.Seconds()

	jumped := false
	if jump && !p.airborne {
		p.airborne = true
		p.VY = p.tuning.JumpVelocity
		jumped = true
	}

	if p.airborne {
		p.Height += p.VY
		p.VY -= p.tuning.Gravity
		if p.Height <= 0 {
			p.Height = 0
			p.VY = 0
			p.airborne = false
		}
		p.bob = 0
	} else {
		p.bob = constants.BobAmplitude * math.Sin(p.elapsed*constants.BobFrequency)
	}
	return jumped
}

// Y returns the elevation used for jump clearance
func (p *Player) Y() float64 {
	return p.tuning.GroundHeight + p.Height + p.bob
}

// Airborne reports whether a jump is in progress
func (p *Player) Airborne() bool {
	return p.airborne
}

// Reset returns the player to a grounded lane-center state
func (p *Player) Reset() {
	*p = Player{tuning: p.tuning}
}

// View returns the renderer's copy of the transform
func (p *Player) View() PlayerView {
	return PlayerView{
		X:        p.X,
		Y:        p.Y(),
		Tilt:     p.Tilt,
		Airborne: p.airborne,
	}
}

package engine

import (
	"math"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/events"
	"github.com/olsujabu/snailgame/vmath"
)

// advanceAndCollide moves every item forward by speed and resolves contacts with the player at (px, 0)
// Band: -CollisionBandSpeedFactor*speed < Z < CollisionBandAhead
// Once the session ends mid-pass the remaining items are kept untouched
func (s *Simulation) advanceAndCollide(speed, px, py float64, d *Delta) {
	bandLow := -s.tuning.CollisionBandSpeedFactor * speed
	bandHigh := s.tuning.CollisionBandAhead

	kept := s.items[:0]
	for i := range s.items {
		it := s.items[i]
		if s.State() != StatePlaying {
			kept = append(kept, it)
			continue
		}

		it.Z += speed
		d.Advanced++

		if it.Z > bandLow && it.Z < bandHigh && vmath.Dist2D(it.X, it.Z, px, 0) < s.tuning.CollisionRadius {
			if it.Kind == KindCollectible {
				s.collect(it, d)
				continue
			}
			if py <= s.tuning.JumpClearance {
				s.hit(it, d)
				continue
			}
			// Jumped over: stays live and is re-checked next tick
			d.Cleared++
		}

		if it.Z < s.tuning.RetainLimit {
			kept = append(kept, it)
		} else {
			d.Discarded++
		}
	}
	clear(s.items[len(kept):])
	s.items = kept
}

// collect resolves a collectible pickup
func (s *Simulation) collect(it Item, d *Delta) {
	combo := s.combo.Pickup(s.now, s.tuning.ComboTimeout.Seconds())
	base := s.tuning.MailScore
	points := base + int(math.Floor(float64(base)*float64(combo)*s.tuning.ComboMultiplier))

	s.score += points
	d.ScoreGained += points
	d.Collected++

	s.effects.Add(EffectCollect, it.X, constants.BurstHeight, it.Z, 0, s.now)
	s.effects.Add(EffectPopup, it.X, constants.PopupHeight, it.Z, points, s.now)

	s.emit(events.EventCollect, &events.CollectPayload{
		ItemID: it.ID,
		Points: points,
		Combo:  combo,
		Score:  s.score,
		X:      it.X,
		Z:      it.Z,
	})
}

// hit resolves hazard damage; depleting health ends the session on this tick
func (s *Simulation) hit(it Item, d *Delta) {
	damage := min(s.tuning.SaltDamage, s.health)
	s.health -= damage
	d.HealthLost += damage
	d.Hits++

	s.combo.Break()
	s.hitUntil = s.now + s.tuning.HitFlashDuration.Seconds()
	s.shakeUntil = s.now + s.tuning.ShakeDuration.Seconds()
	s.effects.Add(EffectHazard, it.X, constants.BurstHeight, it.Z, 0, s.now)

	s.emit(events.EventHit, &events.HitPayload{
		ItemID: it.ID,
		Damage: damage,
		Health: s.health,
		X:      it.X,
		Z:      it.Z,
	})

	if s.health <= 0 && s.machine.Fire(s, TriggerDied) {
		d.GameOver = true
	}
}

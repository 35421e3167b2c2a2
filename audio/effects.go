package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/olsujabu/snailgame/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency glides linearly from start to end
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCollectSound generates a rising chirp for mail pickup
func CreateCollectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(constants.CollectSoundStartHz, constants.CollectSoundEndHz, constants.CollectSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.CollectSoundDuration, constants.CollectSoundAttack, constants.CollectSoundRelease, rate)

	// Octave shimmer on top of the fundamental
	over := NewSweep(constants.CollectSoundStartHz*2, constants.CollectSoundEndHz*2, constants.CollectSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.CollectSoundDuration, constants.CollectSoundAttack, constants.CollectSoundRelease/2, rate)

	mixed := beep.Take(rate.N(constants.CollectSoundDuration), beep.Mix(
		newVolume(shaped, 0.75),
		newVolume(overShaped, 0.25),
	))
	return newVolume(mixed, cfg.EffectVolumes[SoundCollect]*cfg.MasterVolume)
}

// CreateHitSound generates a falling saw thud for salt damage
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(constants.HitSoundStartHz, constants.HitSoundEndHz, constants.HitSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundHit]*cfg.MasterVolume)
}

// CreateJumpSound generates a falling sine boing
func CreateJumpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(constants.JumpSoundStartHz, constants.JumpSoundEndHz, constants.JumpSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.JumpSoundDuration, constants.JumpSoundAttack, constants.JumpSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundJump]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundCollect:
		return CreateCollectSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundJump:
		return CreateJumpSound(cfg)
	default:
		return nil
	}
}

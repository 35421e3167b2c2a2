package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Collect Sound Timing (rising sine chirp, 800Hz -> 1200Hz)
const (
	CollectSoundDuration = 150 * time.Millisecond
	CollectSoundAttack   = 5 * time.Millisecond
	CollectSoundRelease  = 140 * time.Millisecond
	CollectSoundStartHz  = 800.0
	CollectSoundEndHz    = 1200.0
)

// Hit Sound Timing (falling saw thud, 150Hz -> 50Hz)
const (
	HitSoundDuration = 150 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 130 * time.Millisecond
	HitSoundStartHz  = 150.0
	HitSoundEndHz    = 50.0
)

// Jump Sound Timing (falling sine boing, 400Hz -> 200Hz)
const (
	JumpSoundDuration = 200 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 180 * time.Millisecond
	JumpSoundStartHz  = 400.0
	JumpSoundEndHz    = 200.0
)

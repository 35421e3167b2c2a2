package constants

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the simulation tick interval (~60 Hz, speeds are per tick)
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps dt fed to the simulation after a stall
	MaxTickDelta = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// CommandQueueSize is the capacity of the scheduler command channel
	CommandQueueSize = 16
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "snailmail.log"
)

package network

import (
	"time"
)

// Config holds hand bridge settings
type Config struct {
	// Address to bind, host:port
	Address string

	// Path the websocket endpoint is served on
	Path string

	// Connection limits
	MaxPeers     int
	MaxFrameSize int64

	// Timing
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	PingInterval    time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
}

// DefaultConfig returns loopback-only defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "127.0.0.1:8765",
		Path:            "/hand",
		MaxPeers:        2,
		MaxFrameSize:    4 * 1024,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    5 * time.Second,
		PingInterval:    10 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 4 * 1024,
	}
}

// WithAddress returns the defaults bound to addr
func WithAddress(addr string) *Config {
	cfg := DefaultConfig()
	if addr != "" {
		cfg.Address = addr
	}
	return cfg
}

package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/olsujabu/snailgame/core"
	"github.com/olsujabu/snailgame/input"
)

// HandSink receives decoded tracker input
// Implemented by input.Normalizer; calls arrive on peer goroutines
type HandSink interface {
	Hand(x float64)
	Gesture(g input.Gesture)
	SetHandControl(on bool)
}

// Bridge serves a websocket endpoint that external hand trackers push frames to
type Bridge struct {
	config   *Config
	sink     HandSink
	upgrader websocket.Upgrader

	server   *http.Server
	listener net.Listener
	running  atomic.Bool

	mu     sync.Mutex
	peers  map[PeerID]*Peer
	nextID atomic.Uint32

	frames    atomic.Uint64
	badFrames atomic.Uint64
}

// NewBridge creates a stopped bridge; a nil config uses DefaultConfig
func NewBridge(cfg *Config, sink HandSink) *Bridge {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Bridge{
		config: cfg,
		sink:   sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Trackers run as local pages or scripts with arbitrary origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		peers: make(map[PeerID]*Peer),
	}
}

// Handler returns the HTTP handler serving the websocket endpoint
func (b *Bridge) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(b.config.Path, b.serveWS)
	return mux
}

// Start binds the configured address and serves in the background
func (b *Bridge) Start() error {
	if b.running.Load() {
		return nil
	}

	ln, err := net.Listen("tcp", b.config.Address)
	if err != nil {
		return fmt.Errorf("hand bridge listen %s: %w", b.config.Address, err)
	}
	b.listener = ln
	b.server = &http.Server{
		Handler:      b.Handler(),
		ReadTimeout:  b.config.ReadTimeout,
		WriteTimeout: b.config.WriteTimeout,
	}
	b.running.Store(true)

	server := b.server
	core.Go(func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("network: serve: %v", err)
		}
	})
	log.Printf("network: hand bridge listening on ws://%s%s", ln.Addr(), b.config.Path)
	return nil
}

// Addr returns the bound address, empty until Start succeeds
func (b *Bridge) Addr() string {
	if b.listener == nil {
		return ""
	}
	return b.listener.Addr().String()
}

// Stop shuts the listener down and disconnects every peer
func (b *Bridge) Stop() error {
	if !b.running.CompareAndSwap(true, false) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.config.ShutdownTimeout)
	defer cancel()
	err := b.server.Shutdown(ctx)

	// Hijacked websocket connections are not tracked by http.Server
	b.mu.Lock()
	peers := make([]*Peer, 0, len(b.peers))
	for _, p := range b.peers {
		peers = append(peers, p)
	}
	b.mu.Unlock()
	for _, p := range peers {
		p.Close()
	}
	return err
}

func (b *Bridge) IsRunning() bool { return b.running.Load() }

// PeerCount returns connected tracker count
func (b *Bridge) PeerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.peers)
}

// Frames returns the number of frames applied to the sink
func (b *Bridge) Frames() uint64 { return b.frames.Load() }

// BadFrames returns the number of frames rejected by DecodeFrame
func (b *Bridge) BadFrames() uint64 { return b.badFrames.Load() }

func (b *Bridge) serveWS(w http.ResponseWriter, r *http.Request) {
	if b.PeerCount() >= b.config.MaxPeers {
		http.Error(w, "too many trackers", http.StatusServiceUnavailable)
		return
	}

	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("network: upgrade: %v", err)
		return
	}

	p := newPeer(PeerID(b.nextID.Add(1)), conn)
	b.mu.Lock()
	b.peers[p.ID] = p
	b.mu.Unlock()
	log.Printf("network: tracker %d connected from %s", p.ID, p.Addr)

	core.Go(func() { p.pingLoop(b.config) })
	core.Go(func() {
		p.readLoop(b.config, b.apply, b.reject)
		b.mu.Lock()
		delete(b.peers, p.ID)
		b.mu.Unlock()
		log.Printf("network: tracker %d disconnected after %d frames", p.ID, p.Frames.Load())
	})
}

// apply forwards a frame to the sink; hand_control is applied first so a frame can enable and steer at once
func (b *Bridge) apply(id PeerID, frame *HandFrame) {
	b.frames.Add(1)
	if b.sink == nil {
		return
	}
	if frame.HandControl != nil {
		b.sink.SetHandControl(*frame.HandControl)
	}
	if x, ok := frame.Steering(); ok {
		b.sink.Hand(x)
	}
	if g := frame.GestureValue(); g != input.GestureNone {
		b.sink.Gesture(g)
	}
}

func (b *Bridge) reject(id PeerID, err error) {
	if b.badFrames.Add(1) == 1 {
		log.Printf("network: tracker %d: %v", id, err)
	}
}

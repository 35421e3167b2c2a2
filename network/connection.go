package network

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// PeerID uniquely identifies a connected tracker
type PeerID uint32

// Peer is one connected hand tracker
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64  // UnixNano
	Frames   atomic.Uint64 // Frames decoded from this peer

	conn *websocket.Conn

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once

	// gorilla/websocket allows one concurrent writer
	writeMu sync.Mutex
}

func newPeer(id PeerID, conn *websocket.Conn) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Close initiates shutdown; safe to call more than once
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.writeMu.Lock()
		_ = p.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
			time.Now().Add(time.Second))
		p.writeMu.Unlock()
		p.conn.Close()
	})
}

// readLoop decodes frames until the connection fails or closes
// Undecodable frames are reported to onBad and skipped
func (p *Peer) readLoop(cfg *Config, onFrame func(PeerID, *HandFrame), onBad func(PeerID, error)) {
	defer p.Close()

	p.conn.SetReadLimit(cfg.MaxFrameSize)
	_ = p.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	})

	for {
		msgType, data, err := p.conn.ReadMessage()
		if err != nil {
			if !isExpectedClose(err) {
				log.Printf("network: peer %d read: %v", p.ID, err)
			}
			return
		}

		p.LastSeen.Store(time.Now().UnixNano())
		_ = p.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))

		frame, err := DecodeFrame(msgType, data)
		if err != nil {
			onBad(p.ID, err)
			continue
		}
		p.Frames.Add(1)
		onFrame(p.ID, frame)
	}
}

// pingLoop keeps idle trackers alive until the peer closes
func (p *Peer) pingLoop(cfg *Config) {
	ticker := time.NewTicker(cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.closeCh:
			return
		case <-ticker.C:
			p.writeMu.Lock()
			err := p.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(cfg.WriteTimeout))
			p.writeMu.Unlock()
			if err != nil {
				p.Close()
				return
			}
		}
	}
}

func isExpectedClose(err error) bool {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
		return true
	}
	return errors.Is(err, websocket.ErrCloseSent)
}

package network

import (
	"errors"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/olsujabu/snailgame/input"
)

func f64(v float64) *float64 { return &v }

func TestDecodeFrameJSON(t *testing.T) {
	frame, err := DecodeFrame(websocket.TextMessage, []byte(`{"x":-0.4,"gesture":"Closed_Fist","hand_control":true}`))
	if err != nil {
		t.Fatalf("DecodeFrame failed: %v", err)
	}
	if x, ok := frame.Steering(); !ok || x != -0.4 {
		t.Errorf("Expected steering -0.4, got %v (ok=%v)", x, ok)
	}
	if frame.GestureValue() != input.GestureClosedFist {
		t.Errorf("Expected closed fist, got %v", frame.GestureValue())
	}
	if frame.HandControl == nil || !*frame.HandControl {
		t.Errorf("Expected hand_control true")
	}
}

func TestDecodeFrameMsgpackRoundTrip(t *testing.T) {
	on := true
	msgType, data, err := EncodeFrame(&HandFrame{X: f64(0.25), Gesture: "Open_Palm", HandControl: &on}, true)
	if err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Fatalf("Expected binary message, got %d", msgType)
	}

	frame, err := DecodeFrame(msgType, data)
	if err != nil {
		t.Fatalf("DecodeFrame failed: %v", err)
	}
	if x, ok := frame.Steering(); !ok || x != 0.25 {
		t.Errorf("Expected steering 0.25, got %v", x)
	}
	if frame.GestureValue() != input.GestureOpenPalm {
		t.Errorf("Expected open palm, got %v", frame.GestureValue())
	}
}

func TestFrameSteeringSources(t *testing.T) {
	tests := []struct {
		name   string
		frame  HandFrame
		want   float64
		wantOK bool
	}{
		{"none", HandFrame{}, 0, false},
		{"x", HandFrame{X: f64(0.5)}, 0.5, true},
		{"palm left edge mirrors right", HandFrame{PalmX: f64(0)}, 1, true},
		{"palm right edge mirrors left", HandFrame{PalmX: f64(1)}, -1, true},
		{"palm center", HandFrame{PalmX: f64(0.5)}, 0, true},
		{"x wins over palm", HandFrame{X: f64(0.1), PalmX: f64(1)}, 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.frame.Steering()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}
}

func TestDecodeFrameRejects(t *testing.T) {
	tests := []struct {
		name    string
		msgType int
		data    []byte
	}{
		{"bad json", websocket.TextMessage, []byte("{x:")},
		{"bad msgpack", websocket.BinaryMessage, []byte{0xc1}},
		{"ping type", websocket.PingMessage, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFrame(tt.msgType, tt.data); !errors.Is(err, ErrBadFrame) {
				t.Errorf("Expected ErrBadFrame, got %v", err)
			}
		})
	}
}

func TestUnknownGestureIsNone(t *testing.T) {
	f := HandFrame{Gesture: "Jazz_Hands"}
	if f.GestureValue() != input.GestureNone {
		t.Errorf("Expected GestureNone, got %v", f.GestureValue())
	}
}

package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/olsujabu/snailgame/input"
)

// ErrBadFrame is returned for frames that cannot be decoded into a HandFrame
var ErrBadFrame = errors.New("bad hand frame")

// HandFrame is one update from an external hand tracker
// Text messages carry it as JSON, binary messages as msgpack; all fields are optional
//
//	{"x": -0.4, "gesture": "Closed_Fist"}
//	{"palm_x": 0.7, "gesture": "Thumb_Up", "hand_control": true}
type HandFrame struct {
	// X is steering already normalized to [-1, 1]
	X *float64 `json:"x,omitempty" msgpack:"x,omitempty"`

	// PalmX is the raw palm center in camera space [0, 1], mirrored into steering
	// Ignored when X is present
	PalmX *float64 `json:"palm_x,omitempty" msgpack:"palm_x,omitempty"`

	// Gesture is the classifier category name, e.g. "Open_Palm"
	Gesture string `json:"gesture,omitempty" msgpack:"gesture,omitempty"`

	// HandControl switches hand steering on or off
	HandControl *bool `json:"hand_control,omitempty" msgpack:"hand_control,omitempty"`
}

// Steering resolves the frame's lateral input, ok is false when the frame has none
func (f *HandFrame) Steering() (float64, bool) {
	switch {
	case f.X != nil:
		return *f.X, true
	case f.PalmX != nil:
		// Camera image is mirrored: moving the hand right moves the palm left in frame
		return -(*f.PalmX*2 - 1), true
	}
	return 0, false
}

// GestureValue parses the gesture name, unknown names map to GestureNone
func (f *HandFrame) GestureValue() input.Gesture {
	if f.Gesture == "" {
		return input.GestureNone
	}
	return input.ParseGesture(f.Gesture)
}

// DecodeFrame decodes a websocket message by its type
func DecodeFrame(messageType int, data []byte) (*HandFrame, error) {
	var frame HandFrame
	switch messageType {
	case websocket.TextMessage:
		if err := json.Unmarshal(data, &frame); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrBadFrame, err)
		}
	case websocket.BinaryMessage:
		if err := msgpack.Unmarshal(data, &frame); err != nil {
			return nil, fmt.Errorf("%w: msgpack: %v", ErrBadFrame, err)
		}
	default:
		return nil, fmt.Errorf("%w: message type %d", ErrBadFrame, messageType)
	}
	return &frame, nil
}

// EncodeFrame is the inverse of DecodeFrame, used by tracker clients and tests
func EncodeFrame(frame *HandFrame, binary bool) (int, []byte, error) {
	if binary {
		data, err := msgpack.Marshal(frame)
		return websocket.BinaryMessage, data, err
	}
	data, err := json.Marshal(frame)
	return websocket.TextMessage, data, err
}

package ws

import (
	"encoding/json"
)

// MessageType discriminates the messages exchanged on a play session.
type MessageType string

const (
	// Client to server.
	MessageTypeStart MessageType = "start"
	MessageTypeMove  MessageType = "move"

	// Server to client.
	MessageTypePosition MessageType = "position"
	MessageTypeError    MessageType = "error"
)

// Message is the envelope for every WebSocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// StartPayload optionally seeds a session with a position; an empty FEN
// means the standard starting position.
type StartPayload struct {
	Fen string `json:"fen"`
}

// ErrorPayload reports a rejected message with the same kind taxonomy as
// the REST boundary.
type ErrorPayload struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

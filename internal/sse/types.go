package sse

import "github.com/GEON1999/PomoFarm/internal/domain"

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Command   string      `json:"command,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StatePayload carries the full game state after a command changed it,
// so the browser can redraw without a follow-up request.
type StatePayload struct {
	Command string          `json:"command"`
	State   domain.Snapshot `json:"state"`
}

// ConnectedPayload is sent once when a client connects
type ConnectedPayload struct {
	ClientID string   `json:"clientId"`
	Filters  []string `json:"filters"`
}

// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// PairsServedQueue is the durable queue carrying PairsServedEvent messages.
const PairsServedQueue = "pairs.served"

// PairsServedEvent is published after every /get_pairs response.  It holds
// enough to rebuild per-mode statistics without touching the request path.
type PairsServedEvent struct {
	Mode      string    `json:"mode"`
	Count     int       `json:"count"`
	Found     bool      `json:"found"`
	RequestID string    `json:"request_id,omitempty"`
	ServedAt  time.Time `json:"served_at"`
}

// Package mqtt provides MQTT publishing with abstraction for testing.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/sweeney/tapwriter/internal/decode"
)

// Topic is the MQTT topic for decoded text events.
const Topic = "assistive/tapwriter/text"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "assistive/tapwriter/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a decoded output event to the broker.
	// Returns error if publishing fails (should not crash the process).
	Publish(event decode.Event) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown, heartbeat).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // e.g., "STARTUP", "SHUTDOWN", "HEARTBEAT"
	Reason     string // e.g., "SIGTERM", "SIGINT" (shutdown only)
	RawPayload []byte // Pre-formatted JSON payload; if set, FormatSystemPayload returns it directly
	Retained   bool   // Whether the message should be retained by the broker
}

// Payload represents the MQTT message payload structure for text events.
type Payload struct {
	Tapwriter TextPayload `json:"tapwriter"`
}

// TextPayload contains the decoded output details.
type TextPayload struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Text      string `json:"text"`
	Pattern   string `json:"pattern,omitempty"`
}

// FormatPayload creates the JSON payload for a decoded output event.
func FormatPayload(event decode.Event) ([]byte, error) {
	payload := Payload{
		Tapwriter: TextPayload{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     string(event.Type),
			Text:      event.Text,
			Pattern:   event.Pattern,
		},
	}
	return json.Marshal(payload)
}

// SystemPayload represents the MQTT message payload for system events.
// Used for simple events that don't carry a full status snapshot.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}

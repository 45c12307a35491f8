package log

import (
	"time"
)

// Event is one session transcript entry.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates whether data went to or came from the external
	// process.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Script   *ScriptEvent   `cbor:"5,keyasint,omitempty"` // Outgoing command batch
	Response *ResponseEvent `cbor:"6,keyasint,omitempty"` // Incoming response
	State    *StateEvent    `cbor:"7,keyasint,omitempty"` // Session lifecycle
	Error    *ErrorEvent    `cbor:"8,keyasint,omitempty"` // Failures at any layer
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionOut indicates data sent to the external process.
	DirectionOut Direction = 0
	// DirectionIn indicates data received from the external process.
	DirectionIn Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "OUT"
	case DirectionIn:
		return "IN"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryScript indicates an outgoing command batch.
	CategoryScript Category = 0
	// CategoryResponse indicates an incoming response.
	CategoryResponse Category = 1
	// CategoryState indicates a session lifecycle change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryScript:
		return "SCRIPT"
	case CategoryResponse:
		return "RESPONSE"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ScriptEvent captures an outgoing command batch.
type ScriptEvent struct {
	// Operation names the session operation that issued the batch
	// ("open", "update-all", "update-hardware", "set-control").
	Operation string `cbor:"1,keyasint"`

	// Commands are the rendered command strings, in send order.
	Commands []string `cbor:"2,keyasint"`
}

// ResponseEvent captures an incoming response.
type ResponseEvent struct {
	// Lines is the number of response lines after splitting.
	Lines int `cbor:"1,keyasint"`

	// Bytes is the raw response size.
	Bytes int `cbor:"2,keyasint"`

	// Elapsed is the round-trip duration of the batch.
	Elapsed time.Duration `cbor:"3,keyasint"`
}

// StateEvent captures a session lifecycle change.
type StateEvent struct {
	// State is the new session state ("open", "closed").
	State string `cbor:"1,keyasint"`
}

// ErrorEvent captures a failure.
type ErrorEvent struct {
	// Operation names the session operation that failed.
	Operation string `cbor:"1,keyasint"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`
}

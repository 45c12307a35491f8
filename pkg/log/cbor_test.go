package log

import (
	"testing"
	"time"
)

func TestEventRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		event Event
	}{
		{
			name: "script event",
			event: Event{
				Timestamp: time.Now().UTC(),
				SessionID: "8e2f1a34-5b1c-4f6e-9a77-0c3d2b1e4f5a",
				Direction: DirectionOut,
				Category:  CategoryScript,
				Script: &ScriptEvent{
					Operation: "update-all",
					Commands:  []string{"'['", "foreach ($h in $comp.Hardware) {", "}", "']'"},
				},
			},
		},
		{
			name: "response event",
			event: Event{
				Timestamp: time.Now().UTC(),
				SessionID: "8e2f1a34-5b1c-4f6e-9a77-0c3d2b1e4f5a",
				Direction: DirectionIn,
				Category:  CategoryResponse,
				Response: &ResponseEvent{
					Lines:   120,
					Bytes:   2048,
					Elapsed: 35 * time.Millisecond,
				},
			},
		},
		{
			name: "error event",
			event: Event{
				Timestamp: time.Now().UTC(),
				SessionID: "8e2f1a34-5b1c-4f6e-9a77-0c3d2b1e4f5a",
				Direction: DirectionIn,
				Category:  CategoryError,
				Error: &ErrorEvent{
					Operation: "update-hardware",
					Message:   "protocol desynchronized: line 4",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(tt.event)
			if err != nil {
				t.Fatalf("EncodeEvent failed: %v", err)
			}

			decoded, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent failed: %v", err)
			}

			if decoded.SessionID != tt.event.SessionID {
				t.Errorf("SessionID mismatch: got %q, want %q", decoded.SessionID, tt.event.SessionID)
			}
			if decoded.Direction != tt.event.Direction {
				t.Errorf("Direction mismatch: got %v, want %v", decoded.Direction, tt.event.Direction)
			}
			if decoded.Category != tt.event.Category {
				t.Errorf("Category mismatch: got %v, want %v", decoded.Category, tt.event.Category)
			}
			if !decoded.Timestamp.Equal(tt.event.Timestamp) {
				t.Errorf("Timestamp mismatch: got %v, want %v", decoded.Timestamp, tt.event.Timestamp)
			}

			if tt.event.Script != nil {
				if decoded.Script == nil {
					t.Fatal("Script payload lost")
				}
				if decoded.Script.Operation != tt.event.Script.Operation {
					t.Errorf("Operation mismatch: got %q", decoded.Script.Operation)
				}
				if len(decoded.Script.Commands) != len(tt.event.Script.Commands) {
					t.Errorf("Commands length mismatch: got %d", len(decoded.Script.Commands))
				}
			}
			if tt.event.Response != nil {
				if decoded.Response == nil {
					t.Fatal("Response payload lost")
				}
				if decoded.Response.Elapsed != tt.event.Response.Elapsed {
					t.Errorf("Elapsed mismatch: got %v", decoded.Response.Elapsed)
				}
			}
			if tt.event.Error != nil && decoded.Error == nil {
				t.Fatal("Error payload lost")
			}
		})
	}
}

package log

// Logger is the interface applications implement to receive transcript
// events. Pass nil or NoopLogger to disable recording.
type Logger interface {
	// Log records a transcript event. Implementations must be safe for
	// concurrent use and should return quickly; blocking stalls the
	// session operation that produced the event.
	Log(event Event)
}

// NoopLogger discards all events. Use when recording is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}

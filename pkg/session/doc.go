// Package session is the public façade of the library: one open,
// stateful connection to the external monitoring process, bounding the
// lifetime of every identifier it hands out.
//
// Open issues the snapshot script, decodes the response and builds the
// hardware graph; the graph's sensor identifiers are indexed once and
// never repopulated. UpdateAll and UpdateHardware refresh sensor values
// through that index; SetControlSoftware and SetControlDefault drive
// controls, updating the in-memory mode only after the external process
// confirmed the command.
//
// Every operation is one blocking round-trip on the session's single
// transport. The session is not safe for concurrent use: callers that
// share one across goroutines must serialize access. After Close (which
// is idempotent and releases the transport exactly once) every operation
// fails fast with ErrSessionClosed without touching the transport.
//
// Errors are never retried internally. A wire.ErrDesync or
// model.ErrUnknownIdentifier from any operation means the session no
// longer agrees with the external process about identifiers or framing;
// close it and open a fresh one.
package session

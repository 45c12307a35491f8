// Package log records session transcripts: the command scripts sent to
// the external monitoring process and the responses that came back.
//
// Events are CBOR-encoded with integer keys, so transcript files stay
// compact even for sessions that poll every second. A transcript replayed
// through Reader reproduces exactly what crossed the transport boundary,
// which is the primary tool for diagnosing protocol desynchronization:
// the recorded lines either decode or they don't.
//
// Attach a Logger to a session with session.WithProtocolLogger. Runtime
// diagnostics (what the library is doing) use log/slog and are separate
// from this transcript layer (what crossed the wire).
package log

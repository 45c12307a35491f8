// Package transport owns the session with the external monitoring
// process and the command scripts sent over it.
//
// The session layer only depends on the Transport interface: execute a
// batch of pre-rendered command strings against a persistent stateful
// session, get back the raw multi-line response. The PowerShell type is
// the production implementation: a long-lived powershell child process
// that loads the monitoring library once and keeps the initialized
// hardware objects between batches.
//
// The script constructors (OpenComputerScript, UpdateAllScript, ...) are
// the encoding side of the wire contract: the scripts they render are
// what makes the external process emit the bracket-delimited line format
// that pkg/wire decodes. Identifiers and values are embedded with
// wire.QuoteString and wire.FormatValue, never by plain concatenation.
package transport

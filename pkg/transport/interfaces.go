package transport

import "errors"

// Transport errors.
var (
	// ErrPermissionDenied means the elevated privileges required by the
	// monitoring library are missing. Fatal at open, never retried.
	ErrPermissionDenied = errors.New("insufficient permissions for hardware monitoring")

	// ErrInitFailed means the monitoring library could not be loaded into
	// the external process.
	ErrInitFailed = errors.New("monitoring library initialization failed")

	// ErrClosed means the transport was used after Close.
	ErrClosed = errors.New("transport closed")

	// ErrExecution means the external process reported an error while
	// running a command batch.
	ErrExecution = errors.New("command execution failed")
)

// Transport is a persistent stateful command session with the external
// monitoring process. Implementations keep state between batches: objects
// created by one batch are visible to later ones, which is what lets the
// open script capture hardware objects that update and control scripts
// reference by identifier.
type Transport interface {
	// Execute runs a batch of pre-rendered command strings in order and
	// returns the combined text output. Any transport-level failure is an
	// I/O error; the session is then unusable.
	Execute(commands ...string) (string, error)

	// Close terminates the underlying session and releases OS resources.
	// Close is idempotent.
	Close() error
}

// Compile-time interface satisfaction check.
var _ Transport = (*PowerShell)(nil)

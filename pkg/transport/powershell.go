package transport

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ohm-protocol/ohm-go/pkg/wire"
)

// PowerShell is a Transport over a persistent powershell child process.
// The process is started once, the monitoring library is loaded into it,
// and every later batch runs in the same shell so session state ($comp,
// $ohmObjs) survives between calls.
//
// A PowerShell transport belongs to a single goroutine; Execute calls
// must be serialized by the caller.
type PowerShell struct {
	cfg Config

	cmd   *exec.Cmd
	stdin io.WriteCloser

	// stdout and stderr are pumped line by line into channels so Execute
	// can apply the configured timeout. The channels close when the
	// process side closes its pipe.
	outLines <-chan string
	errLines <-chan string

	closed bool
}

// OpenPowerShell spawns the shell process, verifies administrator rights
// and loads the monitoring library. On any failure the child process is
// released before the error is returned.
func OpenPowerShell(cfg Config) (*PowerShell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cmd := exec.Command(cfg.Executable, "-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", "-")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: failed to start %q: %v", ErrInitFailed, cfg.Executable, err)
	}

	ps := &PowerShell{
		cfg:      cfg,
		cmd:      cmd,
		stdin:    stdin,
		outLines: pumpLines(stdout),
		errLines: pumpLines(stderr),
	}

	if err := ps.checkPrivileges(); err != nil {
		_ = ps.Close()
		return nil, err
	}
	if _, err := ps.Execute(bootstrapScript(cfg.LibraryPath)...); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}

	return ps, nil
}

// pumpLines reads r line by line into a channel, closing it on EOF.
func pumpLines(r io.Reader) <-chan string {
	lines := make(chan string, 64)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// checkPrivileges runs the administrator check inside the session.
func (ps *PowerShell) checkPrivileges() error {
	out, err := ps.Execute(privilegeCheckCommand)
	if err != nil {
		return fmt.Errorf("%w: privilege check: %v", ErrInitFailed, err)
	}
	if !strings.EqualFold(strings.TrimSpace(out), "true") {
		return ErrPermissionDenied
	}
	return nil
}

// Execute writes the batch to the shell followed by end markers on both
// output streams, then reads until the markers come back. Anything the
// batch wrote to stderr fails the call with ErrExecution.
func (ps *PowerShell) Execute(commands ...string) (string, error) {
	if ps.closed {
		return "", ErrClosed
	}

	marker := uuid.New().String()
	var batch strings.Builder
	for _, command := range commands {
		batch.WriteString(command)
		batch.WriteString("\n")
	}
	batch.WriteString("Write-Output " + wire.QuoteString(marker) + "\n")
	batch.WriteString("[Console]::Error.WriteLine(" + wire.QuoteString(marker) + ")\n")

	if _, err := io.WriteString(ps.stdin, batch.String()); err != nil {
		return "", fmt.Errorf("failed to write command batch: %w", err)
	}

	timeout := time.NewTimer(ps.cfg.Timeout)
	defer timeout.Stop()

	var out []string
	var errOut []string
	outDone, errDone := false, false

	for !outDone || !errDone {
		select {
		case line, ok := <-ps.outLines:
			if !ok {
				return "", fmt.Errorf("session process closed its output stream")
			}
			if !outDone {
				if line == marker {
					outDone = true
				} else {
					out = append(out, line)
				}
			}

		case line, ok := <-ps.errLines:
			if !ok {
				return "", fmt.Errorf("session process closed its error stream")
			}
			if !errDone {
				if line == marker {
					errDone = true
				} else {
					errOut = append(errOut, line)
				}
			}

		case <-timeout.C:
			return "", fmt.Errorf("command batch timed out after %v", ps.cfg.Timeout)
		}
	}

	if len(errOut) > 0 {
		return "", fmt.Errorf("%w: %s", ErrExecution, strings.Join(errOut, "\n"))
	}
	return strings.Join(out, "\n"), nil
}

// Close terminates the shell session. The shell is asked to exit first;
// if it does not within a grace period the process is killed. Close is
// idempotent.
func (ps *PowerShell) Close() error {
	if ps.closed {
		return nil
	}
	ps.closed = true

	// Closing stdin ends the "-Command -" reader and lets the shell exit
	// on its own.
	_, _ = io.WriteString(ps.stdin, "exit\n")
	_ = ps.stdin.Close()

	done := make(chan error, 1)
	go func() { done <- ps.cmd.Wait() }()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		_ = ps.cmd.Process.Kill()
		return <-done
	}
}

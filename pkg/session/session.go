package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ohm-protocol/ohm-go/pkg/log"
	"github.com/ohm-protocol/ohm-go/pkg/model"
	"github.com/ohm-protocol/ohm-go/pkg/transport"
	"github.com/ohm-protocol/ohm-go/pkg/wire"
)

// ErrSessionClosed is returned by every operation invoked after Close.
// It signals a caller-contract violation, not a transport fault.
var ErrSessionClosed = errors.New("session closed")

// Session owns one transport to the external monitoring process and the
// hardware graph built from its initial snapshot.
type Session struct {
	id        string
	transport transport.Transport

	hardware []*model.Hardware
	registry *model.Registry

	groups         transport.Groups
	logger         *slog.Logger
	protocolLogger log.Logger

	closed bool
}

// Option configures a Session during Open.
type Option func(*Session)

// WithGroups selects the hardware categories included in the snapshot.
// The default is all categories.
func WithGroups(groups transport.Groups) Option {
	return func(s *Session) { s.groups = groups }
}

// WithLogger sets the slog logger for runtime diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithProtocolLogger attaches a transcript recorder for everything that
// crosses the transport boundary.
func WithProtocolLogger(logger log.Logger) Option {
	return func(s *Session) { s.protocolLogger = logger }
}

// Open issues the snapshot script on the transport and builds the
// hardware graph. On any failure the transport is closed before the
// error is returned, so a failed Open never leaks the underlying
// process session.
func Open(t transport.Transport, opts ...Option) (*Session, error) {
	s := &Session{
		id:             uuid.New().String(),
		transport:      t,
		groups:         transport.AllGroups(),
		logger:         slog.New(slog.DiscardHandler),
		protocolLogger: log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	lines, err := s.roundTrip("open", transport.OpenComputerScript(s.groups))
	if err != nil {
		_ = t.Close()
		return nil, err
	}

	records, err := wire.DecodeHardwareList(wire.NewCursor(lines))
	if err != nil {
		s.logError("open", err)
		_ = t.Close()
		return nil, err
	}

	s.hardware, s.registry = model.BuildHardware(records)
	s.logState("open")
	s.logger.Info("session opened",
		"sessionID", s.id,
		"hardware", len(s.hardware),
		"sensors", s.registry.SensorCount())
	return s, nil
}

// ID returns the session's unique identifier, used for transcript
// correlation.
func (s *Session) ID() string {
	return s.id
}

// Hardware returns the top-level hardware nodes in snapshot order.
func (s *Session) Hardware() []*model.Hardware {
	result := make([]*model.Hardware, len(s.hardware))
	copy(result, s.hardware)
	return result
}

// SensorCount returns the number of indexed sensors.
func (s *Session) SensorCount() int {
	return s.registry.SensorCount()
}

// Sensor returns the indexed sensor for an identifier.
func (s *Session) Sensor(identifier string) (*model.Sensor, bool) {
	return s.registry.Sensor(identifier)
}

// Control returns the indexed control for an identifier.
func (s *Session) Control(identifier string) (*model.Control, bool) {
	return s.registry.Control(identifier)
}

// UpdateAll refreshes every sensor from a single round-trip covering all
// hardware subtrees.
func (s *Session) UpdateAll() error {
	if s.closed {
		return ErrSessionClosed
	}
	return s.update("update-all", transport.UpdateAllScript())
}

// UpdateHardware refreshes the sensors of one hardware node and its
// descendants. The identifier must be one captured at Open.
func (s *Session) UpdateHardware(identifier string) error {
	if s.closed {
		return ErrSessionClosed
	}
	return s.update("update-hardware", transport.UpdateHardwareScript(identifier))
}

func (s *Session) update(operation string, script []string) error {
	lines, err := s.roundTrip(operation, script)
	if err != nil {
		return err
	}

	updates, err := wire.DecodeUpdateList(wire.NewCursor(lines))
	if err != nil {
		s.logError(operation, err)
		return err
	}

	if err := s.registry.ApplyUpdates(updates); err != nil {
		s.logError(operation, err)
		return err
	}
	return nil
}

// SetControlDefault returns a control to the hardware's own management.
// The in-memory mode changes only after the command succeeded.
func (s *Session) SetControlDefault(identifier string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if _, ok := s.registry.Control(identifier); !ok {
		return fmt.Errorf("%w: control %q", model.ErrUnknownIdentifier, identifier)
	}

	if _, err := s.roundTrip("set-control", transport.SetControlDefaultScript(identifier)); err != nil {
		return err
	}
	return s.registry.MarkControlDefault(identifier)
}

// SetControlSoftware drives a control to a software-set value. The value
// is passed through unclamped; the in-memory mode records it only after
// the command succeeded.
func (s *Session) SetControlSoftware(identifier string, value float64) error {
	if s.closed {
		return ErrSessionClosed
	}
	if _, ok := s.registry.Control(identifier); !ok {
		return fmt.Errorf("%w: control %q", model.ErrUnknownIdentifier, identifier)
	}

	if _, err := s.roundTrip("set-control", transport.SetControlSoftwareScript(identifier, value)); err != nil {
		return err
	}
	return s.registry.MarkControlSoftware(identifier, value)
}

// Close releases the transport exactly once. It is safe to call multiple
// times and after a failed operation.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.transport.Close()
	s.logState("closed")
	s.logger.Info("session closed", "sessionID", s.id)
	return err
}

// roundTrip executes one script batch and returns the split response
// lines, recording the exchange on the transcript.
func (s *Session) roundTrip(operation string, script []string) ([]string, error) {
	s.protocolLogger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Direction: log.DirectionOut,
		Category:  log.CategoryScript,
		Script: &log.ScriptEvent{
			Operation: operation,
			Commands:  script,
		},
	})

	start := time.Now()
	response, err := s.transport.Execute(script...)
	if err != nil {
		s.logError(operation, err)
		return nil, fmt.Errorf("%s failed: %w", operation, err)
	}

	lines := wire.SplitLines(response)
	s.protocolLogger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Direction: log.DirectionIn,
		Category:  log.CategoryResponse,
		Response: &log.ResponseEvent{
			Lines:   len(lines),
			Bytes:   len(response),
			Elapsed: time.Since(start),
		},
	})
	return lines, nil
}

func (s *Session) logError(operation string, err error) {
	s.logger.Error("session operation failed", "sessionID", s.id, "operation", operation, "error", err)
	s.protocolLogger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Direction: log.DirectionIn,
		Category:  log.CategoryError,
		Error: &log.ErrorEvent{
			Operation: operation,
			Message:   err.Error(),
		},
	})
}

func (s *Session) logState(state string) {
	s.protocolLogger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Direction: log.DirectionOut,
		Category:  log.CategoryState,
		State:     &log.StateEvent{State: state},
	})
}

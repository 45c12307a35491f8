package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ohm-protocol/ohm-go/pkg/model"
)

// Source is the slice of a monitoring session the exporter needs: one
// refresh round-trip and the hardware graph it refreshes.
type Source interface {
	UpdateAll() error
	Hardware() []*model.Hardware
}

// Exporter polls a source on a fixed interval and fans each poll's
// readings out to all sinks.
type Exporter struct {
	source   Source
	sinks    []Sink
	interval time.Duration
	logger   *slog.Logger
}

// NewExporter wires a source to its sinks. A nil logger discards
// diagnostics.
func NewExporter(source Source, sinks []Sink, interval time.Duration, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{
		source:   source,
		sinks:    sinks,
		interval: interval,
		logger:   logger,
	}
}

// Run polls until the context is cancelled, then closes every sink. An
// update failure aborts the loop: a session that lost sync with its
// process cannot recover by polling harder.
func (e *Exporter) Run(ctx context.Context) error {
	defer e.closeSinks()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	// One poll up front so a short-lived run still exports.
	if err := e.poll(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := e.poll(); err != nil {
				return err
			}
		}
	}
}

func (e *Exporter) poll() error {
	if err := e.source.UpdateAll(); err != nil {
		return fmt.Errorf("refresh sensors: %w", err)
	}

	readings := CollectReadings(e.source.Hardware(), time.Now().UTC())
	published := 0
	for _, reading := range readings {
		for _, sink := range e.sinks {
			if err := sink.Publish(reading); err != nil {
				e.logger.Warn("sink publish failed",
					"sensor", reading.Sensor,
					"error", err)
				continue
			}
			published++
		}
	}

	e.logger.Debug("poll complete", "readings", len(readings), "published", published)
	return nil
}

func (e *Exporter) closeSinks() {
	for _, sink := range e.sinks {
		if err := sink.Close(); err != nil {
			e.logger.Warn("sink close failed", "error", err)
		}
	}
}

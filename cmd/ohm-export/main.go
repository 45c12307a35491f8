// Command ohm-export is a headless telemetry daemon.
//
// It opens a monitoring session, polls all sensors on a fixed interval
// and publishes the readings to the sinks named in its configuration
// file: an MQTT broker, an InfluxDB v2 bucket, or both.
//
// Usage:
//
//	ohm-export -config <file.yaml> [flags]
//
// Flags:
//
//	-config string        Daemon configuration file (YAML, required)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  Write a CBOR protocol transcript to this file
//
// Configuration file:
//
//	transport:
//	  executable: powershell
//	  library_path: C:\ohm\OpenHardwareMonitorLib.dll
//	  timeout: 30s
//	export:
//	  interval_seconds: 5
//	  mqtt:
//	    broker_url: tcp://broker.local:1883
//	    client_id: ohm-export
//	    topic_prefix: ohm/host1
//	  influx:
//	    url: http://influx.local:8086
//	    token: ...
//	    org: home
//	    bucket: hardware
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/ohm-protocol/ohm-go/pkg/export"
	ohmlog "github.com/ohm-protocol/ohm-go/pkg/log"
	"github.com/ohm-protocol/ohm-go/pkg/session"
	"github.com/ohm-protocol/ohm-go/pkg/transport"
)

// Config combines the transport and export sections of the daemon
// configuration file.
type Config struct {
	Transport transport.Config `yaml:"transport"`
	Export    export.Config    `yaml:"export"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{
		Transport: transport.DefaultConfig(),
		Export:    export.DefaultConfig(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Transport.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.Export.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "Daemon configuration file (YAML, required)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	protocolLog := flag.String("protocol-log", "", "Write a CBOR protocol transcript to this file")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*configPath, *logLevel, *protocolLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel, protocolLog string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithGroups(cfg.Transport.Groups),
		session.WithLogger(logger),
	}
	if protocolLog != "" {
		fileLogger, err := ohmlog.NewFileLogger(protocolLog)
		if err != nil {
			return err
		}
		defer fileLogger.Close()
		opts = append(opts, session.WithProtocolLogger(fileLogger))
	}

	ps, err := transport.OpenPowerShell(cfg.Transport)
	if err != nil {
		return fmt.Errorf("open transport: %w", err)
	}

	sess, err := session.Open(ps, opts...)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer sess.Close()

	sinks, err := buildSinks(cfg.Export, logger)
	if err != nil {
		return err
	}

	exporter := export.NewExporter(sess, sinks, cfg.Export.Interval(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("exporter running",
		"interval", cfg.Export.Interval(),
		"sinks", len(sinks))

	if err := exporter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("exporter stopped")
	return nil
}

func buildSinks(cfg export.Config, logger *slog.Logger) ([]export.Sink, error) {
	var sinks []export.Sink

	if cfg.MQTT != nil {
		sink, err := export.NewMQTTSink(*cfg.MQTT)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if cfg.Influx != nil {
		sink := export.NewInfluxSink(*cfg.Influx, func(err error) {
			logger.Warn("influx write failed", "error", err)
		})
		sinks = append(sinks, sink)
	}
	return sinks, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %s", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

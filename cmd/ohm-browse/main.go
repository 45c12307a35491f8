// Command ohm-browse is an interactive browser for the hardware
// monitoring session.
//
// It opens a PowerShell transport to the monitoring library, builds the
// hardware tree and drops into a command loop for inspecting sensors,
// refreshing values and driving controls.
//
// Usage:
//
//	ohm-browse [flags]
//
// Flags:
//
//	-config string        Transport configuration file (YAML)
//	-library string       Path to the monitoring library assembly
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  Write a CBOR protocol transcript to this file
//
// Examples:
//
//	# Browse with defaults (powershell from PATH, all hardware groups)
//	ohm-browse -library C:\ohm\OpenHardwareMonitorLib.dll
//
//	# Browse with a config file and a transcript for later analysis
//	ohm-browse -config monitor.yaml -protocol-log session.ohmlog
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	ohmlog "github.com/ohm-protocol/ohm-go/pkg/log"
	"github.com/ohm-protocol/ohm-go/pkg/session"
	"github.com/ohm-protocol/ohm-go/pkg/transport"
)

func main() {
	configPath := flag.String("config", "", "Transport configuration file (YAML)")
	library := flag.String("library", "", "Path to the monitoring library assembly")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	protocolLog := flag.String("protocol-log", "", "Write a CBOR protocol transcript to this file")
	flag.Parse()

	if err := run(*configPath, *library, *logLevel, *protocolLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, library, logLevel, protocolLog string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}

	cfg := transport.DefaultConfig()
	if configPath != "" {
		cfg, err = transport.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	if library != "" {
		cfg.LibraryPath = library
	}

	opts := []session.Option{
		session.WithGroups(cfg.Groups),
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

	ps, err := transport.OpenPowerShell(cfg)
	if err != nil {
		return fmt.Errorf("open transport: %w", err)
	}

	sess, err := session.Open(ps, opts...)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer sess.Close()

	browser, err := NewBrowser(sess)
	if err != nil {
		return err
	}
	browser.Run()
	return nil
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

package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ohm-protocol/ohm-go/pkg/log"
)

// writeTranscript writes events to a fresh transcript file and returns
// its path.
func writeTranscript(t *testing.T, events []log.Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.ohmlog")
	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func sampleEvents() []log.Event {
	base := time.Date(2026, 8, 30, 10, 15, 32, 123456000, time.UTC)
	return []log.Event{
		{
			Timestamp: base,
			SessionID: "8e2f1a34-5b1c-4f6e-9a77-0c3d2b1e4f5a",
			Direction: log.DirectionOut,
			Category:  log.CategoryScript,
			Script: &log.ScriptEvent{
				Operation: "open",
				Commands:  []string{"Write-Output '['", "Write-Output ']'"},
			},
		},
		{
			Timestamp: base.Add(40 * time.Millisecond),
			SessionID: "8e2f1a34-5b1c-4f6e-9a77-0c3d2b1e4f5a",
			Direction: log.DirectionIn,
			Category:  log.CategoryResponse,
			Response:  &log.ResponseEvent{Lines: 40, Bytes: 512, Elapsed: 38 * time.Millisecond},
		},
		{
			Timestamp: base.Add(50 * time.Millisecond),
			SessionID: "8e2f1a34-5b1c-4f6e-9a77-0c3d2b1e4f5a",
			Direction: log.DirectionIn,
			Category:  log.CategoryError,
			Error:     &log.ErrorEvent{Operation: "update-all", Message: "protocol desynchronized"},
		},
	}
}

func TestFormatScriptEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0])
	output := buf.String()

	if !strings.Contains(output, "2026-08-30T10:15:32.123456Z") {
		t.Errorf("expected formatted timestamp, got: %s", output)
	}
	if !strings.Contains(output, "[sess:8e2f1a34]") {
		t.Errorf("expected shortened session ID, got: %s", output)
	}
	if !strings.Contains(output, "OUT") {
		t.Errorf("expected OUT direction, got: %s", output)
	}
	if !strings.Contains(output, "Operation: open") {
		t.Errorf("expected operation, got: %s", output)
	}
	if !strings.Contains(output, "Write-Output '['") {
		t.Errorf("expected command lines, got: %s", output)
	}
}

func TestFormatResponseEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[1])
	output := buf.String()

	if !strings.Contains(output, "RESPONSE") {
		t.Errorf("expected RESPONSE category, got: %s", output)
	}
	if !strings.Contains(output, "Lines: 40") {
		t.Errorf("expected line count, got: %s", output)
	}
	if !strings.Contains(output, "512 bytes") {
		t.Errorf("expected byte count, got: %s", output)
	}
	if !strings.Contains(output, "38.000ms") {
		t.Errorf("expected duration, got: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[2])
	output := buf.String()

	if !strings.Contains(output, "ERROR") {
		t.Errorf("expected ERROR category, got: %s", output)
	}
	if !strings.Contains(output, "protocol desynchronized") {
		t.Errorf("expected error message, got: %s", output)
	}
}

func TestRunViewWithFilter(t *testing.T) {
	path := writeTranscript(t, sampleEvents())

	category := log.CategoryScript
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &category}, &buf); err != nil {
		t.Fatalf("RunView: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "SCRIPT") {
		t.Errorf("expected script event in output, got: %s", output)
	}
	if strings.Contains(output, "RESPONSE") {
		t.Errorf("response event should be filtered out, got: %s", output)
	}
}

func TestParseDirectionFlag(t *testing.T) {
	if d, err := ParseDirectionFlag("OUT"); err != nil || d != log.DirectionOut {
		t.Errorf("ParseDirectionFlag(OUT) = %v, %v", d, err)
	}
	if d, err := ParseDirectionFlag("in"); err != nil || d != log.DirectionIn {
		t.Errorf("ParseDirectionFlag(in) = %v, %v", d, err)
	}
	if _, err := ParseDirectionFlag("sideways"); err == nil {
		t.Error("expected error for invalid direction")
	}
}

func TestParseCategoryFlag(t *testing.T) {
	tests := []struct {
		input string
		want  log.Category
	}{
		{"script", log.CategoryScript},
		{"Response", log.CategoryResponse},
		{"STATE", log.CategoryState},
		{"error", log.CategoryError},
	}
	for _, tt := range tests {
		got, err := ParseCategoryFlag(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParseCategoryFlag(%q) = %v, %v", tt.input, got, err)
		}
	}
	if _, err := ParseCategoryFlag("frame"); err == nil {
		t.Error("expected error for invalid category")
	}
}

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()

	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer reader.Close()

	var events []log.Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		events = append(events, event)
	}
	return events
}

package commands

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunExportJSONL(t *testing.T) {
	path := writeTranscript(t, sampleEvents())
	output := filepath.Join(t.TempDir(), "events.jsonl")

	if err := RunExport(path, "jsonl", output); err != nil {
		t.Fatalf("RunExport: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 JSONL lines, got %d", len(lines))
	}
	for i, line := range lines {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestRunExportCSV(t *testing.T) {
	path := writeTranscript(t, sampleEvents())
	output := filepath.Join(t.TempDir(), "events.csv")

	if err := RunExport(path, "csv", output); err != nil {
		t.Fatalf("RunExport: %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	// Header plus three events.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "timestamp" || rows[0][3] != "category" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][4] != "open" {
		t.Errorf("expected script row operation 'open', got %v", rows[1])
	}
	if !strings.Contains(rows[3][5], "protocol desynchronized") {
		t.Errorf("expected error detail in last row, got %v", rows[3])
	}
}

func TestRunExportUnknownFormat(t *testing.T) {
	path := writeTranscript(t, sampleEvents())

	if err := RunExport(path, "xml", ""); err == nil {
		t.Error("expected error for unknown format")
	}
}

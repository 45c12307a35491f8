package wire

import (
	"errors"
	"testing"
)

// hardwareLines is a snapshot with one root hardware carrying one nested
// subhardware, a read-only sensor and a controllable sensor.
var hardwareLines = []string{
	"[",
	"{",
	"/mainboard",
	"ASUS PRIME",
	"Mainboard",
	"[",
	"{",
	"/lpc/nct6791d",
	"Nuvoton NCT6791D",
	"SuperIO",
	"[",
	"]",
	"[",
	"{",
	"/lpc/nct6791d/fan/0",
	"CPU Fan",
	"Fan",
	"840.5",
	"{",
	"/lpc/nct6791d/control/0",
	"0",
	"100",
	"}",
	"}",
	"]",
	"}",
	"]",
	"[",
	"{",
	"/mainboard/temp/0",
	"Board Temp",
	"Temperature",
	"38",
	"",
	"}",
	"]",
	"}",
	"]",
}

func TestDecodeHardwareList(t *testing.T) {
	items, err := DecodeHardwareList(NewCursor(hardwareLines))
	if err != nil {
		t.Fatalf("DecodeHardwareList failed: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("root count: got %d, want 1", len(items))
	}
	root := items[0]
	if root.Identifier != "/mainboard" || root.Name != "ASUS PRIME" || root.HardwareType != "Mainboard" {
		t.Errorf("root fields: got %+v", root)
	}
	if len(root.SubHardware) != 1 {
		t.Fatalf("subhardware count: got %d, want 1", len(root.SubHardware))
	}
	if len(root.Sensors) != 1 {
		t.Fatalf("root sensor count: got %d, want 1", len(root.Sensors))
	}

	boardTemp := root.Sensors[0]
	if boardTemp.Identifier != "/mainboard/temp/0" || boardTemp.SensorType != "Temperature" {
		t.Errorf("board sensor fields: got %+v", boardTemp)
	}
	if boardTemp.Value != 38 {
		t.Errorf("board sensor value: got %v, want 38", boardTemp.Value)
	}
	if boardTemp.Control != nil {
		t.Errorf("board sensor should have no control, got %+v", boardTemp.Control)
	}

	sub := root.SubHardware[0]
	if len(sub.SubHardware) != 0 || len(sub.Sensors) != 1 {
		t.Fatalf("subhardware shape: %d sub, %d sensors", len(sub.SubHardware), len(sub.Sensors))
	}
	fan := sub.Sensors[0]
	if fan.Value != 840.5 {
		t.Errorf("fan value: got %v, want 840.5", fan.Value)
	}
	if fan.Control == nil {
		t.Fatal("fan sensor should have a control")
	}
	if fan.Control.Identifier != "/lpc/nct6791d/control/0" {
		t.Errorf("control identifier: got %q", fan.Control.Identifier)
	}
	if fan.Control.MinSoftwareValue != 0 || fan.Control.MaxSoftwareValue != 100 {
		t.Errorf("control bounds: got [%v, %v], want [0, 100]",
			fan.Control.MinSoftwareValue, fan.Control.MaxSoftwareValue)
	}
}

func TestDecodeHardwareListEmpty(t *testing.T) {
	items, err := DecodeHardwareList(NewCursor([]string{"[", "]"}))
	if err != nil {
		t.Fatalf("DecodeHardwareList failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestDecodeHardwareListDeterministic(t *testing.T) {
	first, err := DecodeHardwareList(NewCursor(hardwareLines))
	if err != nil {
		t.Fatalf("first decode failed: %v", err)
	}
	second, err := DecodeHardwareList(NewCursor(hardwareLines))
	if err != nil {
		t.Fatalf("second decode failed: %v", err)
	}

	if first[0].Identifier != second[0].Identifier ||
		first[0].SubHardware[0].Sensors[0].Value != second[0].SubHardware[0].Sensors[0].Value {
		t.Error("decoding the same lines twice produced different records")
	}
}

func TestDecodeHardwareListDesync(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{
			name:  "empty input",
			lines: nil,
		},
		{
			name:  "missing opening bracket",
			lines: []string{"{", "id", "name", "type"},
		},
		{
			name:  "missing closing bracket",
			lines: hardwareLines[:len(hardwareLines)-1],
		},
		{
			name:  "truncated mid record",
			lines: hardwareLines[:7],
		},
		{
			name: "malformed sensor value",
			lines: []string{
				"[", "{", "/hw", "HW", "CPU", "[", "]",
				"[", "{", "/hw/temp/0", "Core", "Temperature", "not-a-number", "", "}", "]",
				"}", "]",
			},
		},
		{
			name: "garbage instead of control block",
			lines: []string{
				"[", "{", "/hw", "HW", "CPU", "[", "]",
				"[", "{", "/hw/temp/0", "Core", "Temperature", "45.0", "garbage", "}", "]",
				"}", "]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHardwareList(NewCursor(tt.lines))
			if err == nil {
				t.Fatal("expected desync error, got nil")
			}
			if !errors.Is(err, ErrDesync) {
				t.Errorf("error should wrap ErrDesync, got %v", err)
			}
		})
	}
}

func TestDecodeUpdateList(t *testing.T) {
	lines := []string{
		"[",
		"{",
		"/mainboard/temp/0",
		"41.25",
		"}",
		"{",
		"/lpc/nct6791d/fan/0",
		"912",
		"}",
		"]",
	}

	updates, err := DecodeUpdateList(NewCursor(lines))
	if err != nil {
		t.Fatalf("DecodeUpdateList failed: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("update count: got %d, want 2", len(updates))
	}
	if updates[0].Identifier != "/mainboard/temp/0" || updates[0].Value != 41.25 {
		t.Errorf("first update: got %+v", updates[0])
	}
	if updates[1].Identifier != "/lpc/nct6791d/fan/0" || updates[1].Value != 912 {
		t.Errorf("second update: got %+v", updates[1])
	}
}

func TestDecodeUpdateListDesync(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"missing closing bracket", []string{"[", "{", "/s", "1.0", "}"}},
		{"malformed value", []string{"[", "{", "/s", "1,0", "}", "]"}},
		{"record not opened", []string{"[", "/s", "1.0", "}", "]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeUpdateList(NewCursor(tt.lines))
			if !errors.Is(err, ErrDesync) {
				t.Errorf("error should wrap ErrDesync, got %v", err)
			}
		})
	}
}

func TestCursorForwardOnly(t *testing.T) {
	c := NewCursor([]string{"a", "b"})

	line, err := c.Next()
	if err != nil || line != "a" {
		t.Fatalf("first Next: got %q, %v", line, err)
	}
	if c.Pos() != 1 || c.Remaining() != 1 {
		t.Errorf("after one read: pos %d, remaining %d", c.Pos(), c.Remaining())
	}

	if _, err := c.Next(); err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if _, err := c.Next(); !errors.Is(err, ErrDesync) {
		t.Errorf("exhausted cursor should fail with ErrDesync, got %v", err)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "unix line endings",
			response: "[\n{\nid\n}\n]\n",
			want:     []string{"[", "{", "id", "}", "]"},
		},
		{
			name:     "windows line endings",
			response: "[\r\n{\r\nid\r\n}\r\n]\r\n",
			want:     []string{"[", "{", "id", "}", "]"},
		},
		{
			name:     "interior empty line survives",
			response: "{\n45.0\n\n}",
			want:     []string{"{", "45.0", "", "}"},
		},
		{
			name:     "blank response",
			response: " \r\n \n",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.response)
			if len(got) != len(tt.want) {
				t.Fatalf("line count: got %d (%q), want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

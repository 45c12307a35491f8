package wire

import (
	"testing"
)

func TestQuoteString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/intelcpu/0/temperature/0", "'/intelcpu/0/temperature/0'"},
		{"", "''"},
		{"it's", "'it''s'"},
		{"'; Remove-Item x", "'''; Remove-Item x'"},
	}

	for _, tt := range tests {
		if got := QuoteString(tt.in); got != tt.want {
			t.Errorf("QuoteString(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatParseValueRoundTrip(t *testing.T) {
	values := []float64{0, 42, 42.5, -12.25, 0.0625, 100, 3.5e6}

	for _, v := range values {
		s := FormatValue(v)
		parsed, err := ParseValue(s)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", s, err)
		}
		if parsed != v {
			t.Errorf("round trip %v: formatted %q, parsed %v", v, s, parsed)
		}
	}
}

func TestParseValueInvariant(t *testing.T) {
	if _, err := ParseValue("45,5"); err == nil {
		t.Error("comma decimal separator should not parse")
	}
	if v, err := ParseValue("45.5"); err != nil || v != 45.5 {
		t.Errorf("ParseValue(\"45.5\"): got %v, %v", v, err)
	}
}

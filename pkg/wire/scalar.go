package wire

import (
	"strconv"
	"strings"
)

// QuoteString renders s as a single-quoted string literal for embedding in
// a transport command. Inside single quotes the command language treats
// everything literally except the quote itself, which is escaped by
// doubling. This makes arbitrary identifiers safe to splice into scripts.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// FormatValue renders a sensor or control value for embedding in a
// transport command. The format is culture-invariant: always a period
// decimal separator, shortest representation that round-trips at wire
// precision.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 32)
}

// ParseValue parses a culture-invariant decimal field. The external
// library reports single-precision values, so input is parsed at 32-bit
// precision before widening.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return v, nil
}

package wire

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDesync indicates that the decoder and the external monitoring process
// disagree about the wire format. The session that produced the input
// cannot be locally recovered and should be closed.
var ErrDesync = errors.New("protocol desynchronized")

// Cursor is a forward-only reader over a decoded response's lines. It is
// passed through the recursive descent of the decoder; every read advances
// it by exactly one line and there is no backtracking.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor creates a cursor over the given lines.
func NewCursor(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// Next returns the next line and advances the cursor. Running out of lines
// mid-record means the response was truncated, which is a desync fault.
func (c *Cursor) Next() (string, error) {
	if c.pos >= len(c.lines) {
		return "", fmt.Errorf("%w: response truncated after line %d", ErrDesync, c.pos)
	}
	line := c.lines[c.pos]
	c.pos++
	return line, nil
}

// Pos returns the number of lines consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unconsumed lines.
func (c *Cursor) Remaining() int {
	return len(c.lines) - c.pos
}

// SplitLines splits a raw transport response into trimmed lines. The
// response is split on newlines; carriage returns and trailing whitespace
// are stripped per line, and leading/trailing blank output around the
// whole response is dropped. Interior empty lines are kept because the
// format uses them (absent control).
func SplitLines(response string) []string {
	trimmed := strings.Trim(response, " \t\r\n")
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return lines
}

// Package commands implements the ohm-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ohm-protocol/ohm-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Direction *log.Direction
	Category  *log.Category
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Direction: filter.Direction,
		Category:  filter.Category,
	})
	if err != nil {
		return fmt.Errorf("failed to open transcript: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [sess:id] DIRECTION Category
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [sess:%s] %-3s %s\n",
		ts, shortenSessionID(event.SessionID), event.Direction.String(), event.Category.String())

	switch {
	case event.Script != nil:
		formatScriptDetails(w, event.Script)
	case event.Response != nil:
		formatResponseDetails(w, event.Response)
	case event.State != nil:
		fmt.Fprintf(w, "  -> %s\n", event.State.State)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatScriptDetails(w io.Writer, script *log.ScriptEvent) {
	fmt.Fprintf(w, "  Operation: %s\n", script.Operation)
	fmt.Fprintf(w, "  Commands:  %d lines\n", len(script.Commands))
	for _, command := range script.Commands {
		fmt.Fprintf(w, "    %s\n", command)
	}
}

func formatResponseDetails(w io.Writer, response *log.ResponseEvent) {
	fmt.Fprintf(w, "  Lines: %d\n", response.Lines)
	fmt.Fprintf(w, "  Size: %d bytes\n", response.Bytes)
	fmt.Fprintf(w, "  Duration: %s\n", formatDuration(response.Elapsed))
}

func formatErrorDetails(w io.Writer, errEvent *log.ErrorEvent) {
	fmt.Fprintf(w, "  Operation: %s\n", errEvent.Operation)
	fmt.Fprintf(w, "  Message: %s\n", errEvent.Message)
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseDirectionFlag parses a direction string from a command-line flag
// (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from a command-line flag
// (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "script":
		return log.CategoryScript, nil
	case "response":
		return log.CategoryResponse, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be script, response, state, or error)", s)
	}
}

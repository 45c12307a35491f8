package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ohm-protocol/ohm-go/pkg/model"
	"github.com/ohm-protocol/ohm-go/pkg/session"
)

// Browser handles the interactive command loop for ohm-browse.
type Browser struct {
	sess *session.Session
	rl   *readline.Instance
}

// NewBrowser creates the interactive handler.
func NewBrowser(sess *session.Session) (*Browser, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ohm> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Browser{sess: sess, rl: rl}, nil
}

// Run starts the interactive command loop. It returns when the user
// exits.
func (b *Browser) Run() {
	defer b.rl.Close()

	b.printHelp()

	for {
		line, err := b.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(b.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			b.printHelp()

		case "tree", "t":
			b.cmdTree()

		case "sensors", "s":
			b.cmdSensors(args)

		case "update", "u":
			b.cmdUpdate(args)

		case "set":
			b.cmdSet(args)

		case "default":
			b.cmdDefault(args)

		case "resetmin":
			b.cmdReset(args, (*model.Sensor).ResetMin, "min")

		case "resetmax":
			b.cmdReset(args, (*model.Sensor).ResetMax, "max")

		case "quit", "exit", "q":
			fmt.Fprintln(b.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(b.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (b *Browser) printHelp() {
	fmt.Fprintln(b.rl.Stdout(), `
Hardware Monitor Commands:
  Inspection:
    tree                  - Show the full hardware tree with current values
    sensors <hardware-id> - List sensors of a hardware node and its subtree

  Refresh:
    update                - Refresh all sensor values
    update <hardware-id>  - Refresh one hardware subtree

  Controls:
    set <control-id> <value> - Drive a control to a software value
    default <control-id>     - Return a control to hardware management

  Extremes:
    resetmin <sensor-id>  - Reset a sensor's tracked minimum
    resetmax <sensor-id>  - Reset a sensor's tracked maximum

  General:
    help                  - Show this help
    quit                  - Exit`)
}

func (b *Browser) cmdTree() {
	out := b.rl.Stdout()
	for _, h := range b.sess.Hardware() {
		b.printHardware(out, h, 0)
	}
}

func (b *Browser) printHardware(out io.Writer, h *model.Hardware, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(out, "%s%s [%s] (%s)\n", indent, h.Name(), h.HardwareType(), h.Identifier())

	for _, s := range h.Sensors() {
		fmt.Fprintf(out, "%s  %s\n", indent, formatSensor(s))
	}
	for _, sub := range h.SubHardware() {
		b.printHardware(out, sub, depth+1)
	}
}

func (b *Browser) cmdSensors(args []string) {
	out := b.rl.Stdout()
	if len(args) < 1 {
		fmt.Fprintln(out, "Usage: sensors <hardware-id>")
		return
	}

	node := findHardware(b.sess.Hardware(), args[0])
	if node == nil {
		fmt.Fprintf(out, "Hardware not found: %s\n", args[0])
		return
	}
	printSensorSubtree(out, node)
}

func printSensorSubtree(out io.Writer, h *model.Hardware) {
	for _, s := range h.Sensors() {
		fmt.Fprintf(out, "  %s\n", formatSensor(s))
	}
	for _, sub := range h.SubHardware() {
		printSensorSubtree(out, sub)
	}
}

func (b *Browser) cmdUpdate(args []string) {
	out := b.rl.Stdout()

	var err error
	if len(args) == 0 {
		err = b.sess.UpdateAll()
	} else {
		err = b.sess.UpdateHardware(args[0])
	}
	if err != nil {
		fmt.Fprintf(out, "Update failed: %v\n", err)
		return
	}
	fmt.Fprintln(out, "OK")
}

func (b *Browser) cmdSet(args []string) {
	out := b.rl.Stdout()
	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: set <control-id> <value>")
		return
	}

	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(out, "Invalid value: %v\n", err)
		return
	}

	if err := b.sess.SetControlSoftware(args[0], value); err != nil {
		fmt.Fprintf(out, "Set failed: %v\n", err)
		return
	}
	fmt.Fprintln(out, "OK")
}

func (b *Browser) cmdDefault(args []string) {
	out := b.rl.Stdout()
	if len(args) < 1 {
		fmt.Fprintln(out, "Usage: default <control-id>")
		return
	}

	if err := b.sess.SetControlDefault(args[0]); err != nil {
		fmt.Fprintf(out, "Set failed: %v\n", err)
		return
	}
	fmt.Fprintln(out, "OK")
}

func (b *Browser) cmdReset(args []string, reset func(*model.Sensor), what string) {
	out := b.rl.Stdout()
	if len(args) < 1 {
		fmt.Fprintf(out, "Usage: reset%s <sensor-id>\n", what)
		return
	}

	sensor, ok := b.sess.Sensor(args[0])
	if !ok {
		fmt.Fprintf(out, "Sensor not found: %s\n", args[0])
		return
	}
	reset(sensor)
	fmt.Fprintln(out, "OK")
}

func formatSensor(s *model.Sensor) string {
	unit := s.Unit()
	if unit != "" {
		unit = " " + unit
	}

	line := fmt.Sprintf("%s (%s) = %g%s [min %g, max %g] (%s)",
		s.Name(), s.Type(), s.Value(), unit, s.Min(), s.Max(), s.Identifier())
	if control, ok := s.Control(); ok {
		mode := "default"
		if control.IsSoftwareControlled() {
			mode = "software"
		}
		line += fmt.Sprintf(" control=%s mode=%s", control.Identifier(), mode)
	}
	return line
}

func findHardware(nodes []*model.Hardware, identifier string) *model.Hardware {
	for _, h := range nodes {
		if h.Identifier() == identifier {
			return h
		}
		if found := findHardware(h.SubHardware(), identifier); found != nil {
			return found
		}
	}
	return nil
}

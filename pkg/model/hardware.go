package model

// Hardware is a monitored component (CPU, GPU, mainboard, ...) or logical
// grouping, possibly with nested subhardware. Identity, name, type and the
// child lists are fixed at build time.
type Hardware struct {
	identifier   string
	name         string
	hardwareType string

	// parent is a non-owning back-reference; ownership flows parent to
	// child only. Nil for top-level hardware.
	parent *Hardware

	subHardware []*Hardware
	sensors     []*Sensor
}

// Identifier returns the opaque identifier assigned by the external
// library at snapshot time.
func (h *Hardware) Identifier() string {
	return h.identifier
}

// Name returns the display name.
func (h *Hardware) Name() string {
	return h.name
}

// HardwareType returns the free-form category tag, e.g. "GPU".
func (h *Hardware) HardwareType() string {
	return h.hardwareType
}

// Parent returns the enclosing hardware. The second return is false for
// top-level hardware.
func (h *Hardware) Parent() (*Hardware, bool) {
	return h.parent, h.parent != nil
}

// SubHardware returns the nested hardware in reported order.
func (h *Hardware) SubHardware() []*Hardware {
	result := make([]*Hardware, len(h.subHardware))
	copy(result, h.subHardware)
	return result
}

// Sensors returns the component's own sensors in reported order. Sensors
// of subhardware are reached through SubHardware.
func (h *Hardware) Sensors() []*Sensor {
	result := make([]*Sensor, len(h.sensors))
	copy(result, h.sensors)
	return result
}

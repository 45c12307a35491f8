package model

import (
	"errors"
	"fmt"

	"github.com/ohm-protocol/ohm-go/pkg/wire"
)

// ErrUnknownIdentifier indicates that an update or control command
// referenced an identifier that was not registered during the initial
// snapshot. The identifier index is never repopulated after the session
// opens, so this means the wire contract with the external process has
// drifted; treat it with the same severity as wire.ErrDesync.
var ErrUnknownIdentifier = errors.New("identifier not present in session index")

// Registry is the flat identifier index of one session: every sensor and
// control registered during the initial parse, keyed by identifier. It
// routes update responses to the matching live Sensor and records
// confirmed control mode changes.
type Registry struct {
	sensors  map[string]*Sensor
	controls map[string]*Control
}

// BuildHardware constructs the hardware graph from a decoded snapshot and
// returns the top-level nodes together with the session's registry.
//
// For each record the subhardware is built first, then the sensors with
// their controls, each registered as it is attached. If the snapshot
// reports the same identifier twice, the later registration wins.
func BuildHardware(records []wire.HardwareRecord) ([]*Hardware, *Registry) {
	reg := &Registry{
		sensors:  make(map[string]*Sensor),
		controls: make(map[string]*Control),
	}
	roots := buildHardwareList(records, nil, reg)
	return roots, reg
}

func buildHardwareList(records []wire.HardwareRecord, parent *Hardware, reg *Registry) []*Hardware {
	hardware := make([]*Hardware, 0, len(records))
	for _, record := range records {
		hardware = append(hardware, buildHardwareItem(record, parent, reg))
	}
	return hardware
}

func buildHardwareItem(record wire.HardwareRecord, parent *Hardware, reg *Registry) *Hardware {
	h := &Hardware{
		identifier:   record.Identifier,
		name:         record.Name,
		hardwareType: record.HardwareType,
		parent:       parent,
	}

	h.subHardware = buildHardwareList(record.SubHardware, h, reg)

	h.sensors = make([]*Sensor, 0, len(record.Sensors))
	for _, sensorRecord := range record.Sensors {
		sensor := buildSensor(sensorRecord, h, reg)
		h.sensors = append(h.sensors, sensor)
		reg.sensors[sensor.identifier] = sensor
	}

	return h
}

func buildSensor(record wire.SensorRecord, hardware *Hardware, reg *Registry) *Sensor {
	s := &Sensor{
		identifier: record.Identifier,
		name:       record.Name,
		sensorType: ParseSensorType(record.SensorType),
		typeTag:    record.SensorType,
		hardware:   hardware,
		value:      record.Value,
		min:        record.Value,
		max:        record.Value,
	}

	if record.Control != nil {
		control := &Control{
			identifier:       record.Control.Identifier,
			minSoftwareValue: record.Control.MinSoftwareValue,
			maxSoftwareValue: record.Control.MaxSoftwareValue,
		}
		s.control = control
		reg.controls[control.identifier] = control
	}

	return s
}

// Sensor returns the registered sensor for an identifier.
func (r *Registry) Sensor(identifier string) (*Sensor, bool) {
	s, ok := r.sensors[identifier]
	return s, ok
}

// Control returns the registered control for an identifier.
func (r *Registry) Control(identifier string) (*Control, bool) {
	c, ok := r.controls[identifier]
	return c, ok
}

// SensorCount returns the number of registered sensors.
func (r *Registry) SensorCount() int {
	return len(r.sensors)
}

// ApplyUpdates routes each decoded update to its sensor. Updates are
// applied in order in a single forward pass; on an unknown identifier the
// error is returned immediately and the remaining updates are not applied.
func (r *Registry) ApplyUpdates(updates []wire.UpdateRecord) error {
	for _, update := range updates {
		sensor, ok := r.sensors[update.Identifier]
		if !ok {
			return fmt.Errorf("%w: sensor %q", ErrUnknownIdentifier, update.Identifier)
		}
		sensor.SetValue(update.Value)
	}
	return nil
}

// MarkControlSoftware records a confirmed software-control request on the
// registered control.
func (r *Registry) MarkControlSoftware(identifier string, value float64) error {
	control, ok := r.controls[identifier]
	if !ok {
		return fmt.Errorf("%w: control %q", ErrUnknownIdentifier, identifier)
	}
	control.markSoftware(value)
	return nil
}

// MarkControlDefault records a confirmed return to default mode on the
// registered control.
func (r *Registry) MarkControlDefault(identifier string) error {
	control, ok := r.controls[identifier]
	if !ok {
		return fmt.Errorf("%w: control %q", ErrUnknownIdentifier, identifier)
	}
	control.markDefault()
	return nil
}

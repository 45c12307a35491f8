package model

// Sensor is a single measured quantity attached to a hardware item. Value,
// min and max start at the snapshot reading and are mutated only by update
// responses routed through the Registry, plus the explicit min/max resets.
type Sensor struct {
	identifier string
	name       string
	sensorType SensorType

	// typeTag is the raw wire tag, kept so unknown types stay inspectable.
	typeTag string

	// hardware is the owning node, a non-owning back-reference.
	hardware *Hardware

	value float64
	min   float64
	max   float64

	// control is the sensor's writable counterpart, nil for read-only
	// sensors.
	control *Control
}

// Identifier returns the sensor's opaque identifier.
func (s *Sensor) Identifier() string {
	return s.identifier
}

// Name returns the display name.
func (s *Sensor) Name() string {
	return s.name
}

// Type returns the classified sensor type.
func (s *Sensor) Type() SensorType {
	return s.sensorType
}

// TypeTag returns the raw type tag from the wire. For known types this
// equals Type().String().
func (s *Sensor) TypeTag() string {
	return s.typeTag
}

// Unit returns the measurement unit of the sensor, empty when unknown.
func (s *Sensor) Unit() string {
	return s.sensorType.Unit()
}

// Hardware returns the owning hardware node.
func (s *Sensor) Hardware() *Hardware {
	return s.hardware
}

// Value returns the most recent reading.
func (s *Sensor) Value() float64 {
	return s.value
}

// Min returns the smallest reading observed since the session opened or
// the last ResetMin.
func (s *Sensor) Min() float64 {
	return s.min
}

// Max returns the largest reading observed since the session opened or
// the last ResetMax.
func (s *Sensor) Max() float64 {
	return s.max
}

// IsControllable reports whether the sensor has a control.
func (s *Sensor) IsControllable() bool {
	return s.control != nil
}

// Control returns the sensor's control. The second return is false for
// read-only sensors.
func (s *Sensor) Control() (*Control, bool) {
	return s.control, s.control != nil
}

// SetValue records a new reading and widens min/max to keep
// min <= value <= max.
func (s *Sensor) SetValue(value float64) {
	s.value = value
	if value < s.min {
		s.min = value
	}
	if value > s.max {
		s.max = value
	}
}

// ResetMin snaps the running minimum to the current value, discarding
// history. Other sensors are unaffected.
func (s *Sensor) ResetMin() {
	s.min = s.value
}

// ResetMax snaps the running maximum to the current value, discarding
// history.
func (s *Sensor) ResetMax() {
	s.max = s.value
}

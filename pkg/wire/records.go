package wire

// HardwareRecord is one decoded Hardware-item: a monitored component with
// its nested subhardware and sensors, exactly as reported in the initial
// snapshot.
type HardwareRecord struct {
	// Identifier is the opaque identity assigned by the external library,
	// stable for the lifetime of the session.
	Identifier string

	// Name is the display name.
	Name string

	// HardwareType is a free-form category tag, e.g. "GPU".
	HardwareType string

	// SubHardware holds nested hardware in reported order.
	SubHardware []HardwareRecord

	// Sensors holds the component's sensors in reported order.
	Sensors []SensorRecord
}

// SensorRecord is one decoded Sensor-item.
type SensorRecord struct {
	Identifier string

	Name string

	// SensorType is the raw type tag from the wire, e.g. "Temperature".
	SensorType string

	// Value is the sensor reading captured at snapshot time.
	Value float64

	// Control is the writable counterpart of the sensor, nil when the
	// sensor is read-only.
	Control *ControlRecord
}

// ControlRecord is the decoded control block of a controllable sensor.
type ControlRecord struct {
	Identifier string

	// MinSoftwareValue and MaxSoftwareValue are the permissible bounds for
	// software-set values, as reported by the external library.
	MinSoftwareValue float64
	MaxSoftwareValue float64
}

// UpdateRecord is one decoded Update-item: a fresh value for a sensor
// identified during the initial snapshot.
type UpdateRecord struct {
	Identifier string
	Value      float64
}

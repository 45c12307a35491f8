package model

// SensorType classifies what quantity a sensor measures. The vocabulary is
// fixed by the external monitoring library; tags outside it decode to
// SensorTypeUnknown with the original text preserved on the sensor.
type SensorType uint8

const (
	// SensorTypeUnknown is any tag outside the known vocabulary.
	SensorTypeUnknown SensorType = iota

	// SensorTypeVoltage is a voltage in volts.
	SensorTypeVoltage

	// SensorTypeClock is a clock frequency in megahertz.
	SensorTypeClock

	// SensorTypeTemperature is a temperature in degrees Celsius.
	SensorTypeTemperature

	// SensorTypeLoad is a utilization percentage.
	SensorTypeLoad

	// SensorTypeFan is a fan speed in revolutions per minute.
	SensorTypeFan

	// SensorTypeFlow is a coolant flow in litres per hour.
	SensorTypeFlow

	// SensorTypeControl is a control duty percentage (e.g. fan PWM).
	SensorTypeControl

	// SensorTypeLevel is a fill level percentage.
	SensorTypeLevel

	// SensorTypeFactor is a dimensionless factor.
	SensorTypeFactor

	// SensorTypePower is a power draw in watts.
	SensorTypePower

	// SensorTypeData is a data quantity in gibibytes.
	SensorTypeData

	// SensorTypeSmallData is a data quantity in mebibytes.
	SensorTypeSmallData
)

// sensorTypeNames maps wire tags to types. The tags are the exact strings
// the external library emits.
var sensorTypeNames = map[string]SensorType{
	"Voltage":     SensorTypeVoltage,
	"Clock":       SensorTypeClock,
	"Temperature": SensorTypeTemperature,
	"Load":        SensorTypeLoad,
	"Fan":         SensorTypeFan,
	"Flow":        SensorTypeFlow,
	"Control":     SensorTypeControl,
	"Level":       SensorTypeLevel,
	"Factor":      SensorTypeFactor,
	"Power":       SensorTypePower,
	"Data":        SensorTypeData,
	"SmallData":   SensorTypeSmallData,
}

// ParseSensorType maps a wire tag to its SensorType. Unrecognized tags
// return SensorTypeUnknown.
func ParseSensorType(tag string) SensorType {
	return sensorTypeNames[tag]
}

// String returns the wire tag of the sensor type.
func (t SensorType) String() string {
	switch t {
	case SensorTypeVoltage:
		return "Voltage"
	case SensorTypeClock:
		return "Clock"
	case SensorTypeTemperature:
		return "Temperature"
	case SensorTypeLoad:
		return "Load"
	case SensorTypeFan:
		return "Fan"
	case SensorTypeFlow:
		return "Flow"
	case SensorTypeControl:
		return "Control"
	case SensorTypeLevel:
		return "Level"
	case SensorTypeFactor:
		return "Factor"
	case SensorTypePower:
		return "Power"
	case SensorTypeData:
		return "Data"
	case SensorTypeSmallData:
		return "SmallData"
	default:
		return "Unknown"
	}
}

// Unit returns the measurement unit for the sensor type, or an empty
// string when the type has no unit (Factor, Unknown).
func (t SensorType) Unit() string {
	switch t {
	case SensorTypeVoltage:
		return "V"
	case SensorTypeClock:
		return "MHz"
	case SensorTypeTemperature:
		return "°C"
	case SensorTypeLoad, SensorTypeControl, SensorTypeLevel:
		return "%"
	case SensorTypeFan:
		return "RPM"
	case SensorTypeFlow:
		return "L/h"
	case SensorTypePower:
		return "W"
	case SensorTypeData:
		return "GiB"
	case SensorTypeSmallData:
		return "MiB"
	default:
		return ""
	}
}

package wire

import (
	"fmt"
)

// Structural tokens of the line format.
const (
	tokenArrayOpen   = "["
	tokenArrayClose  = "]"
	tokenRecordOpen  = "{"
	tokenRecordClose = "}"
)

// DecodeHardwareList decodes a full Hardware-list from the cursor. This is
// the response shape of the session-open command. The cursor must be
// positioned at the opening "[" of the list.
func DecodeHardwareList(c *Cursor) ([]HardwareRecord, error) {
	if err := expect(c, tokenArrayOpen); err != nil {
		return nil, err
	}
	return decodeHardwareItems(c)
}

// decodeHardwareItems decodes hardware items until the closing "]". The
// opening "[" has already been consumed.
func decodeHardwareItems(c *Cursor) ([]HardwareRecord, error) {
	var items []HardwareRecord
	for {
		line, err := c.Next()
		if err != nil {
			return nil, err
		}
		if line == tokenArrayClose {
			return items, nil
		}
		if line != tokenRecordOpen {
			return nil, desyncf(c, "expected %q or %q, got %q", tokenRecordOpen, tokenArrayClose, line)
		}

		item, err := decodeHardwareItem(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// decodeHardwareItem decodes the body of a Hardware-item. The opening "{"
// has already been consumed.
func decodeHardwareItem(c *Cursor) (HardwareRecord, error) {
	var item HardwareRecord
	var err error

	if item.Identifier, err = c.Next(); err != nil {
		return HardwareRecord{}, err
	}
	if item.Name, err = c.Next(); err != nil {
		return HardwareRecord{}, err
	}
	if item.HardwareType, err = c.Next(); err != nil {
		return HardwareRecord{}, err
	}

	if item.SubHardware, err = DecodeHardwareList(c); err != nil {
		return HardwareRecord{}, err
	}
	if item.Sensors, err = decodeSensorList(c); err != nil {
		return HardwareRecord{}, err
	}

	if err := expect(c, tokenRecordClose); err != nil {
		return HardwareRecord{}, err
	}
	return item, nil
}

// decodeSensorList decodes a Sensor-list including its brackets.
func decodeSensorList(c *Cursor) ([]SensorRecord, error) {
	if err := expect(c, tokenArrayOpen); err != nil {
		return nil, err
	}

	var sensors []SensorRecord
	for {
		line, err := c.Next()
		if err != nil {
			return nil, err
		}
		if line == tokenArrayClose {
			return sensors, nil
		}
		if line != tokenRecordOpen {
			return nil, desyncf(c, "expected %q or %q, got %q", tokenRecordOpen, tokenArrayClose, line)
		}

		sensor, err := decodeSensorItem(c)
		if err != nil {
			return nil, err
		}
		sensors = append(sensors, sensor)
	}
}

// decodeSensorItem decodes the body of a Sensor-item. The opening "{" has
// already been consumed.
func decodeSensorItem(c *Cursor) (SensorRecord, error) {
	var sensor SensorRecord
	var err error

	if sensor.Identifier, err = c.Next(); err != nil {
		return SensorRecord{}, err
	}
	if sensor.Name, err = c.Next(); err != nil {
		return SensorRecord{}, err
	}
	if sensor.SensorType, err = c.Next(); err != nil {
		return SensorRecord{}, err
	}

	raw, err := c.Next()
	if err != nil {
		return SensorRecord{}, err
	}
	if sensor.Value, err = parseValueAt(c, raw); err != nil {
		return SensorRecord{}, err
	}

	// Control-or-empty: a "{" opens a control block, an empty line means
	// the sensor is read-only.
	line, err := c.Next()
	if err != nil {
		return SensorRecord{}, err
	}
	switch line {
	case tokenRecordOpen:
		control, err := decodeControl(c)
		if err != nil {
			return SensorRecord{}, err
		}
		sensor.Control = &control
	case "":
		sensor.Control = nil
	default:
		return SensorRecord{}, desyncf(c, "expected control block or empty line, got %q", line)
	}

	if err := expect(c, tokenRecordClose); err != nil {
		return SensorRecord{}, err
	}
	return sensor, nil
}

// decodeControl decodes the body of a control block. The opening "{" has
// already been consumed.
func decodeControl(c *Cursor) (ControlRecord, error) {
	var control ControlRecord
	var err error

	if control.Identifier, err = c.Next(); err != nil {
		return ControlRecord{}, err
	}

	raw, err := c.Next()
	if err != nil {
		return ControlRecord{}, err
	}
	if control.MinSoftwareValue, err = parseValueAt(c, raw); err != nil {
		return ControlRecord{}, err
	}

	raw, err = c.Next()
	if err != nil {
		return ControlRecord{}, err
	}
	if control.MaxSoftwareValue, err = parseValueAt(c, raw); err != nil {
		return ControlRecord{}, err
	}

	if err := expect(c, tokenRecordClose); err != nil {
		return ControlRecord{}, err
	}
	return control, nil
}

// DecodeUpdateList decodes an Update-list: the flat (identifier, value)
// sequence returned by the update commands. The cursor must be positioned
// at the opening "[" of the list.
func DecodeUpdateList(c *Cursor) ([]UpdateRecord, error) {
	if err := expect(c, tokenArrayOpen); err != nil {
		return nil, err
	}

	var updates []UpdateRecord
	for {
		line, err := c.Next()
		if err != nil {
			return nil, err
		}
		if line == tokenArrayClose {
			return updates, nil
		}
		if line != tokenRecordOpen {
			return nil, desyncf(c, "expected %q or %q, got %q", tokenRecordOpen, tokenArrayClose, line)
		}

		var update UpdateRecord
		if update.Identifier, err = c.Next(); err != nil {
			return nil, err
		}
		raw, err := c.Next()
		if err != nil {
			return nil, err
		}
		if update.Value, err = parseValueAt(c, raw); err != nil {
			return nil, err
		}
		if err := expect(c, tokenRecordClose); err != nil {
			return nil, err
		}

		updates = append(updates, update)
	}
}

// expect consumes one line and verifies it is the wanted structural token.
func expect(c *Cursor, token string) error {
	line, err := c.Next()
	if err != nil {
		return err
	}
	if line != token {
		return desyncf(c, "expected %q, got %q", token, line)
	}
	return nil
}

// parseValueAt parses a numeric field, reporting the cursor position on
// failure.
func parseValueAt(c *Cursor, raw string) (float64, error) {
	v, err := ParseValue(raw)
	if err != nil {
		return 0, desyncf(c, "malformed number %q", raw)
	}
	return v, nil
}

// desyncf builds a desync error annotated with the line position.
func desyncf(c *Cursor, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrDesync, c.Pos(), fmt.Sprintf(format, args...))
}

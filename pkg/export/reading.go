package export

import (
	"time"

	"github.com/ohm-protocol/ohm-go/pkg/model"
)

// Reading is one sensor sample flattened out of the hardware graph.
type Reading struct {
	Timestamp time.Time `json:"timestamp"`
	Hardware  string    `json:"hardware"`
	Sensor    string    `json:"sensor"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Unit      string    `json:"unit,omitempty"`
	Value     float64   `json:"value"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
}

// Sink receives readings. Implementations decide about batching and
// delivery guarantees; Publish must be safe to call repeatedly after a
// failure.
type Sink interface {
	Publish(reading Reading) error
	Close() error
}

// CollectReadings flattens a hardware graph into one reading per sensor,
// all stamped with the same timestamp. The hardware field carries the
// name of the top-level node owning the sensor's subtree.
func CollectReadings(hardware []*model.Hardware, timestamp time.Time) []Reading {
	var readings []Reading
	for _, h := range hardware {
		readings = collectSubtree(readings, h, h.Name(), timestamp)
	}
	return readings
}

func collectSubtree(readings []Reading, h *model.Hardware, root string, timestamp time.Time) []Reading {
	for _, sensor := range h.Sensors() {
		readings = append(readings, Reading{
			Timestamp: timestamp,
			Hardware:  root,
			Sensor:    sensor.Identifier(),
			Name:      sensor.Name(),
			Type:      sensor.Type().String(),
			Unit:      sensor.Type().Unit(),
			Value:     sensor.Value(),
			Min:       sensor.Min(),
			Max:       sensor.Max(),
		})
	}
	for _, sub := range h.SubHardware() {
		readings = collectSubtree(readings, sub, root, timestamp)
	}
	return readings
}

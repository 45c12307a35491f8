package export

import (
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// InfluxSink writes readings as points on the non-blocking v2 write
// API. Points are batched by the client; write errors arrive on the
// error channel passed to the onError callback.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
}

var _ Sink = (*InfluxSink)(nil)

// NewInfluxSink creates the client and write API. onError receives
// asynchronous write failures; it may be nil.
func NewInfluxSink(cfg InfluxConfig, onError func(error)) *InfluxSink {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	writeAPI := client.WriteAPI(cfg.Org, cfg.Bucket)

	if onError != nil {
		errorsCh := writeAPI.Errors()
		go func() {
			for err := range errorsCh {
				onError(err)
			}
		}()
	}

	return &InfluxSink{client: client, writeAPI: writeAPI}
}

// Publish enqueues one point. Delivery is asynchronous; failures surface
// through the onError callback, not here.
func (s *InfluxSink) Publish(reading Reading) error {
	s.writeAPI.WritePoint(sensorPoint(reading))
	return nil
}

// Close flushes pending points and shuts the client down.
func (s *InfluxSink) Close() error {
	s.writeAPI.Flush()
	s.client.Close()
	return nil
}

// sensorPoint maps a reading onto the "sensor" measurement: identity as
// tags, the sampled values as fields.
func sensorPoint(reading Reading) *write.Point {
	return write.NewPoint(
		"sensor",
		map[string]string{
			"hardware": reading.Hardware,
			"sensor":   reading.Sensor,
			"name":     reading.Name,
			"type":     reading.Type,
		},
		map[string]interface{}{
			"value": reading.Value,
			"min":   reading.Min,
			"max":   reading.Max,
		},
		reading.Timestamp,
	)
}

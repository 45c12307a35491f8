package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	mqttConnectTimeout = 10 * time.Second
	mqttPublishTimeout = 5 * time.Second
)

// MQTTSink publishes each reading as a JSON payload on a per-sensor
// topic below the configured prefix.
type MQTTSink struct {
	client pahomqtt.Client
	cfg    MQTTConfig
}

var _ Sink = (*MQTTSink)(nil)

// NewMQTTSink connects to the broker. Reconnects after a broken
// connection are handled by the client; Publish fails while the client
// is disconnected.
func NewMQTTSink(cfg MQTTConfig) (*MQTTSink, error) {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(mqttConnectTimeout)

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", cfg.BrokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", cfg.BrokerURL, err)
	}

	return &MQTTSink{client: client, cfg: cfg}, nil
}

// Publish sends one reading and waits for the broker acknowledgment
// according to the configured QoS.
func (s *MQTTSink) Publish(reading Reading) error {
	payload, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("encode reading: %w", err)
	}

	topic := SensorTopic(s.cfg.TopicPrefix, reading.Sensor)
	token := s.client.Publish(topic, s.cfg.QoS, s.cfg.Retained, payload)
	if !token.WaitTimeout(mqttPublishTimeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the broker, allowing in-flight messages a short
// grace period.
func (s *MQTTSink) Close() error {
	s.client.Disconnect(1000)
	return nil
}

// SensorTopic maps a sensor identifier onto a topic below the prefix.
// Identifiers already use slash separators, so only the leading slash is
// folded into the prefix.
func SensorTopic(prefix, identifier string) string {
	if prefix == "" {
		prefix = "ohm"
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(identifier, "/")
}

package export

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoSinks is returned by Config.Validate when neither sink is
// configured.
var ErrNoSinks = errors.New("no sinks configured")

// MQTTConfig describes one MQTT broker target.
type MQTTConfig struct {
	BrokerURL   string `yaml:"broker_url"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	QoS         byte   `yaml:"qos"`
	Retained    bool   `yaml:"retained"`
	TopicPrefix string `yaml:"topic_prefix"`
}

// InfluxConfig describes one InfluxDB v2 target.
type InfluxConfig struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

// Config drives an export daemon: how often to poll and where to send
// readings. A nil sink section disables that sink.
type Config struct {
	IntervalSeconds int           `yaml:"interval_seconds"`
	MQTT            *MQTTConfig   `yaml:"mqtt,omitempty"`
	Influx          *InfluxConfig `yaml:"influx,omitempty"`
}

// DefaultConfig returns a config with a five second poll interval and no
// sinks.
func DefaultConfig() Config {
	return Config{IntervalSeconds: 5}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Interval returns the poll interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Validate checks the config for values the exporter cannot run with.
func (c Config) Validate() error {
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("interval_seconds must be positive, got %d", c.IntervalSeconds)
	}
	if c.MQTT == nil && c.Influx == nil {
		return ErrNoSinks
	}
	if c.MQTT != nil {
		if c.MQTT.BrokerURL == "" {
			return errors.New("mqtt.broker_url must be set")
		}
		if c.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.MQTT.QoS)
		}
	}
	if c.Influx != nil {
		if c.Influx.URL == "" {
			return errors.New("influx.url must be set")
		}
		if c.Influx.Org == "" || c.Influx.Bucket == "" {
			return errors.New("influx.org and influx.bucket must be set")
		}
	}
	return nil
}

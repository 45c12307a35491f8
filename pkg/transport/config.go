package transport

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Groups selects which hardware categories the external library opens.
// Disabled groups are absent from the snapshot entirely.
type Groups struct {
	Mainboard     bool `yaml:"mainboard"`
	CPU           bool `yaml:"cpu"`
	RAM           bool `yaml:"ram"`
	GPU           bool `yaml:"gpu"`
	FanController bool `yaml:"fan_controller"`
	HDD           bool `yaml:"hdd"`
}

// AllGroups returns a Groups value with every hardware category enabled.
func AllGroups() Groups {
	return Groups{
		Mainboard:     true,
		CPU:           true,
		RAM:           true,
		GPU:           true,
		FanController: true,
		HDD:           true,
	}
}

// Config configures the PowerShell transport.
type Config struct {
	// Executable is the shell binary to spawn.
	Executable string `yaml:"executable"`

	// LibraryPath is the path to the monitoring library assembly loaded
	// into the session.
	LibraryPath string `yaml:"library_path"`

	// Timeout bounds a single Execute round-trip.
	Timeout time.Duration `yaml:"timeout"`

	// Groups selects the hardware categories to monitor.
	Groups Groups `yaml:"groups"`
}

// DefaultConfig returns the transport defaults: powershell from PATH, the
// monitoring library next to the working directory, a 30 second command
// timeout and all hardware groups enabled.
func DefaultConfig() Config {
	return Config{
		Executable:  "powershell",
		LibraryPath: "OpenHardwareMonitorLib.dll",
		Timeout:     30 * time.Second,
		Groups:      AllGroups(),
	}
}

// UnmarshalYAML decodes a transport config, accepting the timeout in
// time.ParseDuration syntax ("30s", "1m"). Fields absent from the YAML
// keep the values already present on the receiver.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		Executable  string `yaml:"executable"`
		LibraryPath string `yaml:"library_path"`
		Timeout     string `yaml:"timeout"`
		Groups      Groups `yaml:"groups"`
	}{
		Executable:  c.Executable,
		LibraryPath: c.LibraryPath,
		Groups:      c.Groups,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.Executable = raw.Executable
	c.LibraryPath = raw.LibraryPath
	c.Groups = raw.Groups
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		c.Timeout = timeout
	}
	return nil
}

// LoadConfig reads a YAML transport configuration. Missing fields keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read transport config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse transport config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.Executable == "" {
		return fmt.Errorf("invalid transport config: executable must not be empty")
	}
	if c.LibraryPath == "" {
		return fmt.Errorf("invalid transport config: library_path must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid transport config: timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

package counter

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML as either a
// time.ParseDuration string ("250ms") or a bare integer of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case int:
		*d = Duration(time.Duration(v) * time.Millisecond)
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("duration must be a string or an integer of milliseconds, got %T", raw)
	}
}

// Config holds the simulated-latency interval of each action. The delays
// pace the UI; they coordinate no real work and cannot be cancelled once
// an action has started.
type Config struct {
	IncrementDelay Duration `yaml:"incrementDelay"`
	BatchDelay     Duration `yaml:"batchDelay"`
	ResetDelay     Duration `yaml:"resetDelay"`
	SetCountDelay  Duration `yaml:"setCountDelay"`
}

// DefaultConfig returns the stock pacing: 300ms increment, 500ms batch,
// 200ms reset, 250ms set.
func DefaultConfig() Config {
	return Config{
		IncrementDelay: Duration(300 * time.Millisecond),
		BatchDelay:     Duration(500 * time.Millisecond),
		ResetDelay:     Duration(200 * time.Millisecond),
		SetCountDelay:  Duration(250 * time.Millisecond),
	}
}

// Validate rejects negative delays.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value Duration
	}{
		{"incrementDelay", c.IncrementDelay},
		{"batchDelay", c.BatchDelay},
		{"resetDelay", c.ResetDelay},
		{"setCountDelay", c.SetCountDelay},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %s", f.name, time.Duration(f.value))
		}
	}
	return nil
}

// LoadConfig reads a YAML delay configuration from path and validates it.
// Fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

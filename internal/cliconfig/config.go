package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/nernst/internal/domain"
)

// DefaultTemperature is body temperature (37 °C) in kelvin.
const DefaultTemperature = 310.15

// Display units.
const (
	UnitMillivolts = "mV"
	UnitVolts      = "V"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration for nernst.
type Config struct {
	// Temperature in kelvin, used when a record carries none
	Temperature float64

	Unit      string
	Format    string
	Precision int

	Workers       int
	WatchDebounce time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Temperature:   DefaultTemperature,
		Unit:          UnitMillivolts,
		Format:        FormatText,
		Precision:     2,
		Workers:       4,
		WatchDebounce: 200 * time.Millisecond,
		LogLevel:      "info",
	}
}

// Validate checks the configuration for errors and normalizes spellings.
func (c *Config) Validate() error {
	if !(c.Temperature > 0) {
		return fmt.Errorf("%w: temperature must be positive kelvin, got %v", domain.ErrInvalidConfig, c.Temperature)
	}

	switch strings.ToLower(c.Unit) {
	case "mv":
		c.Unit = UnitMillivolts
	case "v":
		c.Unit = UnitVolts
	default:
		return fmt.Errorf("%w: unit must be mV or V, got %q", domain.ErrInvalidConfig, c.Unit)
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w: format must be text or json, got %q", domain.ErrInvalidConfig, c.Format)
	}

	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("%w: precision must be between 0 and 12", domain.ErrInvalidConfig)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive", domain.ErrInvalidConfig)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("%w: watch debounce must not be negative", domain.ErrInvalidConfig)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", domain.ErrInvalidConfig, err)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int value from a pointer, so that an explicit zero applies.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatPtr sets a float64 value from a pointer, so that zero and negative
// values reach Validate.
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Zero is accepted; negative values are left for Validate to reject.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Out-of-range values are left for Validate to reject.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

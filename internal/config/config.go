// Package config loads the settings of the scroll indicator demo hosts from
// a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"scrollindicator/internal/collector"
	"scrollindicator/internal/orchestrator"
)

// Config is the on-disk configuration.
type Config struct {
	// Container selects the initial demo container: "content" or "list".
	Container string `yaml:"container"`

	Indicator orchestrator.Options `yaml:"indicator"`
	// Crazy is the alternate indicator style the demo can switch to.
	Crazy orchestrator.IndicatorStyle `yaml:"crazy_style"`

	Collector collector.CollectorConfig `yaml:"collector"`

	// Log is a file path for debug logging; empty disables logging.
	Log string `yaml:"log"`
}

// Default returns the built-in configuration. Terminal cells are coarse, so
// the girth is one cell rather than the library default.
func Default() Config {
	return Config{
		Container: orchestrator.VariantContent.String(),
		Indicator: orchestrator.DefaultOptions().WithStyle(orchestrator.IndicatorStyle{
			Girth: 1,
			Color: "#7D56F4",
		}),
		// Merged over Indicator.Style, so the corner radius is inherited.
		Crazy: orchestrator.IndicatorStyle{
			Girth: 3,
			Color: "#f27b24",
		},
		Collector: collector.DefaultCollectorConfig(),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks every section of the configuration.
func (c Config) Validate() error {
	switch c.Container {
	case orchestrator.VariantContent.String(), orchestrator.VariantList.String():
	default:
		return &orchestrator.ConfigError{Field: "Container", Message: `must be "content" or "list"`}
	}
	if err := c.Indicator.Validate(); err != nil {
		return err
	}
	if err := c.Indicator.WithStyle(c.Crazy).Validate(); err != nil {
		return err
	}
	return c.Collector.Validate()
}

// Variant returns the configured container kind.
func (c Config) Variant() orchestrator.Variant {
	if c.Container == orchestrator.VariantList.String() {
		return orchestrator.VariantList
	}
	return orchestrator.VariantContent
}

package collector

import "time"

// CollectorConfig contains configurable parameters for the process collector.
// Use DefaultCollectorConfig() to get sensible defaults, then override as needed.
type CollectorConfig struct {
	Timeout      time.Duration `yaml:"timeout"`       // Deadline for one listing (default: 2s)
	PollInterval time.Duration `yaml:"poll_interval"` // How often the TUI refreshes rows (default: 2s)
	Limit        int           `yaml:"limit"`         // Maximum processes returned (default: 200)
}

// DefaultCollectorConfig returns a CollectorConfig with sensible defaults.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Timeout:      2 * time.Second,
		PollInterval: 2 * time.Second,
		Limit:        200,
	}
}

// WithTimeout returns a copy of the config with a modified timeout.
func (c CollectorConfig) WithTimeout(d time.Duration) CollectorConfig {
	c.Timeout = d
	return c
}

// WithPollInterval returns a copy of the config with a modified poll interval.
func (c CollectorConfig) WithPollInterval(d time.Duration) CollectorConfig {
	c.PollInterval = d
	return c
}

// WithLimit returns a copy of the config with a modified process limit.
func (c CollectorConfig) WithLimit(n int) CollectorConfig {
	c.Limit = n
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c CollectorConfig) Validate() error {
	if c.Timeout <= 0 {
		return &ConfigError{Field: "Timeout", Message: "must be positive"}
	}
	if c.PollInterval <= 0 {
		return &ConfigError{Field: "PollInterval", Message: "must be positive"}
	}
	if c.Limit <= 0 {
		return &ConfigError{Field: "Limit", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

package domain

import (
	"fmt"
	"strings"
)

// ValidLogLevels enumerates the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "off"}

// ProjectConfig holds configuration loaded from .plugval.yaml or
// .plugval.toml.
type ProjectConfig struct {
	Properties map[string]string `yaml:"properties" toml:"properties" json:"properties,omitempty"`
	Log        LogConfig         `yaml:"log"        toml:"log"        json:"log,omitempty"`
	Jobs       int               `yaml:"jobs"       toml:"jobs"       json:"jobs,omitempty"`
}

// LogConfig configures the console logger.
type LogConfig struct {
	Level string `yaml:"level" toml:"level" json:"level,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Log: LogConfig{Level: "info"}}
}

// Validate checks the config for invalid values. The report level property
// is not checked here; it falls back to DEFAULT with a warning when read.
func (c ProjectConfig) Validate() error {
	if c.Log.Level != "" && !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("unknown log.level %q (valid: %s)", c.Log.Level, strings.Join(ValidLogLevels, ", "))
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0 (got %d)", c.Jobs)
	}
	for k := range c.Properties {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("properties must not contain an empty key")
		}
	}
	return nil
}

// Property looks up a session property.
func (c ProjectConfig) Property(key string) (string, bool) {
	v, ok := c.Properties[key]
	return v, ok
}

// WithProperties returns a copy with overrides layered over Properties.
func (c ProjectConfig) WithProperties(overrides map[string]string) ProjectConfig {
	merged := make(map[string]string, len(c.Properties)+len(overrides))
	for k, v := range c.Properties {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	c.Properties = merged
	return c
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}

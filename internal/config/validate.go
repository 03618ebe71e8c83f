package config

import (
	"fmt"
	"strings"
)

// validOutputs lists the accepted output modes.
var validOutputs = []string{"auto", "text", "markdown", "json", "yaml"}

// validLogLevels lists the accepted log levels.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !contains(validOutputs, strings.ToLower(c.Output)) {
		return fmt.Errorf("invalid output %q (want one of %s)", c.Output, strings.Join(validOutputs, ", "))
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, c.Precision)
	}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level %q (want one of %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size)
	}
	for alias, f := range c.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("aliases: empty alias name")
		}
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("aliases: alias %q has an empty formula", alias)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

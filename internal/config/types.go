// Package config provides layered configuration for metalcalc.
//
// Values are loaded with koanf from, lowest to highest precedence: built-in
// defaults, metalcalc.yaml (or .yml), METALCALC_* environment variables and
// explicitly set command-line flags.
package config

import "strings"

// CacheConfig holds formula cache settings.
type CacheConfig struct {
	// Size bounds the number of cached formulas; 0 means unbounded.
	Size int `koanf:"size"`

	// Preload lists formulas (or aliases) parsed at startup.
	Preload []string `koanf:"preload"`
}

// Config holds all metalcalc configuration options.
type Config struct {
	Output    string            `koanf:"output"`
	Precision int               `koanf:"precision"`
	Verbose   bool              `koanf:"verbose"`
	LogLevel  string            `koanf:"log_level"`
	Cache     CacheConfig       `koanf:"cache"`
	Aliases   map[string]string `koanf:"aliases"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when none was found.
	ProjectRoot string `koanf:"-"`
}

// Resolve returns the formula registered under alias name, or name itself
// when it is not an alias. Alias names are matched case-insensitively.
func (c *Config) Resolve(name string) string {
	key := strings.TrimSpace(name)
	if c == nil || len(c.Aliases) == 0 {
		return key
	}
	if f, ok := c.Aliases[key]; ok {
		return f
	}
	for alias, f := range c.Aliases {
		if strings.EqualFold(alias, key) {
			return f
		}
	}
	return key
}

// ResolveAll applies Resolve to each name.
func (c *Config) ResolveAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = c.Resolve(n)
	}
	return out
}

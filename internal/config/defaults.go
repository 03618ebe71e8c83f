package config

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPrecision = 4
	DefaultLogLevel  = "warn"
	DefaultCacheSize = 0 // unbounded

	// MaxPrecision is the largest number of decimals that still changes a float64 rendering.
	MaxPrecision = 17
)

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	c := &Config{Precision: DefaultPrecision}
	ApplyDefaults(c)
	return c
}

// ApplyDefaults fills unset fields of c with default values.
func ApplyDefaults(c *Config) {
	if c == nil {
		return
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Aliases == nil {
		c.Aliases = map[string]string{}
	}
}

// defaultValues is the koanf defaults layer.
func defaultValues() map[string]interface{} {
	return map[string]interface{}{
		"output":     DefaultOutput,
		"precision":  DefaultPrecision,
		"verbose":    false,
		"log_level":  DefaultLogLevel,
		"cache.size": DefaultCacheSize,
	}
}

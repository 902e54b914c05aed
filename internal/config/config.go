// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":3001".
	Addr string `koanf:"addr"`

	// StoreSize bounds the in-memory chart store.
	StoreSize int `koanf:"store_size"`

	// MaxRecentLimit caps GET /charts?limit.
	MaxRecentLimit int `koanf:"max_recent_limit"`

	// LunarOffsetDays is the flat lunar-to-solar day shift. Kept configurable
	// so the approximation is visible; it is not a lunisolar conversion.
	LunarOffsetDays int `koanf:"lunar_offset_days"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":3001",
		StoreSize:       10_000,
		MaxRecentLimit:  100,
		LunarOffsetDays: 30,
	}
}

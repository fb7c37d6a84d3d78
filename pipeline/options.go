package pipeline

import "github.com/cwbudde/algo-scope/trace"

const defaultMaxGap = 8

// Config defines one extraction pass.
type Config struct {
	// Locator holds trace location parameters.
	Locator trace.LocatorConfig

	// MaxGap is the longest unresolved run, in columns, that gap repair
	// will interpolate across.
	MaxGap int

	// MaxHarmonics limits the synthesized coefficient count; <= 0 selects
	// the harmonic package default.
	MaxHarmonics int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns pass defaults for a contrast-enhanced capture.
func DefaultConfig() Config {
	return Config{
		Locator: trace.DefaultLocatorConfig(),
		MaxGap:  defaultMaxGap,
	}
}

// WithThreshold sets the foreground-acceptance brightness threshold.
func WithThreshold(threshold uint8) Option {
	return func(cfg *Config) {
		cfg.Locator.Threshold = threshold
	}
}

// WithMaxJump sets the continuity limit in rows.
func WithMaxJump(rows int) Option {
	return func(cfg *Config) {
		if rows > 0 {
			cfg.Locator.MaxJump = rows
		}
	}
}

// WithMaxGap sets the longest repairable unresolved run in columns.
func WithMaxGap(columns int) Option {
	return func(cfg *Config) {
		if columns >= 0 {
			cfg.MaxGap = columns
		}
	}
}

// WithHarmonics limits the number of synthesized harmonics.
func WithHarmonics(count int) Option {
	return func(cfg *Config) {
		if count > 0 {
			cfg.MaxHarmonics = count
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

package events

// Config defines detection parameters. Thresholds are in dF/F units,
// durations in samples.
type Config struct {
	Threshold   float64 // onset level
	Release     float64 // close level; 0 means half the onset threshold
	MinDuration int     // shortest event kept, in samples
	Refractory  int     // samples skipped after an event closes
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns detection defaults suited to smoothed dF/F traces.
func DefaultConfig() Config {
	return Config{
		Threshold:   0.1,
		MinDuration: 3,
	}
}

// WithThreshold sets the onset threshold.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.Threshold = threshold
		}
	}
}

// WithRelease sets the hysteresis release level.
func WithRelease(release float64) Option {
	return func(cfg *Config) {
		if release > 0 {
			cfg.Release = release
		}
	}
}

// WithMinDuration sets the shortest event kept, in samples.
func WithMinDuration(samples int) Option {
	return func(cfg *Config) {
		if samples > 0 {
			cfg.MinDuration = samples
		}
	}
}

// WithRefractory sets the post-event dead time, in samples.
func WithRefractory(samples int) Option {
	return func(cfg *Config) {
		if samples >= 0 {
			cfg.Refractory = samples
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

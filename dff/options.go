package dff

// Config defines the dF/F pipeline parameters. Time constants are in
// seconds and are converted to sample counts with the frame rate.
type Config struct {
	FrameRate     float64 // acquisition frame rate in Hz
	Tau0          float64 // exponential smoothing half-life
	Tau1          float64 // baseline boxcar width
	Tau2          float64 // lookback window for the trailing minimum
	Invert        bool    // signal of interest is a fluorescence decrease
	LowBackground bool    // low-background acquisition (photon counting etc.)
	Offset        float64 // baseline offset used in low-background mode
	Workers       int     // channels processed concurrently; <=1 is sequential
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the protocol defaults at 30 Hz.
func DefaultConfig() Config {
	return Config{
		FrameRate: 30,
		Tau0:      0.1,
		Tau1:      0.35,
		Tau2:      2.0,
		Offset:    0.05,
		Workers:   1,
	}
}

// WithFrameRate sets the acquisition frame rate in Hz.
func WithFrameRate(fps float64) Option {
	return func(cfg *Config) {
		if fps > 0 {
			cfg.FrameRate = fps
		}
	}
}

// WithTimeConstants sets the three protocol time constants in seconds:
// tau0 (smoothing half-life), tau1 (boxcar width), tau2 (minimum lookback).
func WithTimeConstants(tau0, tau1, tau2 float64) Option {
	return func(cfg *Config) {
		if tau0 >= 0 {
			cfg.Tau0 = tau0
		}

		if tau1 >= 0 {
			cfg.Tau1 = tau1
		}

		if tau2 >= 0 {
			cfg.Tau2 = tau2
		}
	}
}

// WithInvert negates the traces before baseline estimation, so decrease-type
// signals are processed uniformly with increase-type ones.
func WithInvert() Option {
	return func(cfg *Config) {
		cfg.Invert = true
	}
}

// WithLowBackground selects the offset ratio variant for acquisition regimes
// where the baseline is not strictly positive.
func WithLowBackground() Option {
	return func(cfg *Config) {
		cfg.LowBackground = true
	}
}

// WithOffset sets the low-background baseline offset.
func WithOffset(offset float64) Option {
	return func(cfg *Config) {
		if offset >= 0 {
			cfg.Offset = offset
		}
	}
}

// WithWorkers sets how many channels are processed concurrently.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
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

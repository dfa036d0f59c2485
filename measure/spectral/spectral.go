// Package spectral summarizes the frequency content of dF/F traces.
//
// A windowed FFT turns a trace into a one-sided magnitude spectrum, from
// which the usual shape descriptors (centroid, spread, flatness, rolloff)
// are derived. Useful as a quick diagnostic for periodic contamination
// (line noise, breathing or heartbeat artifacts) and for comparing noise
// floors across recordings.
package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-dsp/stats/frequency"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Config defines spectrum analysis parameters.
type Config struct {
	SampleRate float64     // frame rate in Hz
	FFTSize    int         // 0 selects the next power of two >= trace length
	WindowType window.Type // 0 selects Hann
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns defaults for a 30 Hz recording.
func DefaultConfig() Config {
	return Config{
		SampleRate: 30,
		WindowType: window.TypeHann,
	}
}

// WithSampleRate sets the acquisition frame rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets an explicit FFT size.
func WithFFTSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.FFTSize = size
		}
	}
}

// WithWindowType sets the analysis window.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.WindowType = t
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

// Result holds the one-sided spectrum of a trace with summary statistics.
type Result struct {
	Magnitude []float64 // bins 0 (DC) through Nyquist
	BinWidth  float64   // Hz per bin
	Stats     frequency.Stats
}

// Analyze computes the windowed magnitude spectrum of a dF/F trace.
func Analyze(x []float64, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	if len(x) == 0 {
		return Result{}, fmt.Errorf("spectral: empty trace")
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(x))
	}

	if fftSize < len(x) {
		return Result{}, fmt.Errorf("spectral: FFT size %d smaller than trace length %d", fftSize, len(x))
	}

	winType := cfg.WindowType
	if winType == 0 {
		winType = window.TypeHann
	}

	coeffs := window.Generate(winType, len(x))

	in := make([]complex128, fftSize)
	for i := range x {
		w := 1.0
		if len(coeffs) == len(x) {
			w = coeffs[i]
		}

		in[i] = complex(x[i]*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("spectral: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spectral: %w", err)
	}

	bins := fftSize/2 + 1

	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Result{
		Magnitude: mag,
		BinWidth:  cfg.SampleRate / float64(fftSize),
		Stats:     frequency.Calculate(mag, cfg.SampleRate),
	}, nil
}

// PeakFrequency returns the frequency of the strongest bin above DC, in Hz.
func (r Result) PeakFrequency() float64 {
	if len(r.Magnitude) < 2 {
		return 0
	}

	peak := 1
	for i := 2; i < len(r.Magnitude); i++ {
		if r.Magnitude[i] > r.Magnitude[peak] {
			peak = i
		}
	}

	return float64(peak) * r.BinWidth
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}

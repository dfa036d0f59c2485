package dff

import (
	"sync"

	"github.com/cwbudde/algo-fluo/trace"
)

// params holds the time constants converted to sample units.
type params struct {
	tau0Samples float64 // half-life, fractional samples allowed
	tau1Samples int
	tau2Samples int
	minPeriods  int
}

// deriveParams converts the second-valued time constants to sample counts
// and derives the minimum-observation floor for the windowed statistics.
func deriveParams(cfg Config) params {
	return params{
		tau0Samples: cfg.FrameRate * cfg.Tau0,
		tau1Samples: int(cfg.FrameRate * cfg.Tau1),
		tau2Samples: int(cfg.FrameRate * cfg.Tau2),
		minPeriods:  max(1, int(cfg.FrameRate/10)),
	}
}

// Compute calculates a dF/F trace for every row of data.
//
// data holds one fluorescence trace per row (channels by time); the result
// has the same shape. Rows are processed independently, concurrently when
// WithWorkers is set above one. The input is never mutated.
//
// The leading samples of each output row are exactly 0 until the rolling
// windows have seen enough history; see the package documentation.
func Compute(data [][]float64, opts ...Option) ([][]float64, error) {
	cfg := ApplyOptions(opts...)

	m := trace.Matrix(data)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if cfg.Invert {
		m = m.Negated()
	}

	p := deriveParams(cfg)
	out := make([][]float64, len(m))

	if cfg.Workers > 1 && len(m) > 1 {
		var wg sync.WaitGroup

		sem := make(chan struct{}, cfg.Workers)

		for i, row := range m {
			wg.Add(1)

			go func() {
				defer wg.Done()

				sem <- struct{}{}
				out[i] = computeChannel(row, cfg, p)
				<-sem
			}()
		}

		wg.Wait()
	} else {
		for i, row := range m {
			out[i] = computeChannel(row, cfg, p)
		}
	}

	return out, nil
}

// ComputeSeries calculates dF/F for a single trace, returned as a one-row
// matrix.
func ComputeSeries(x []float64, opts ...Option) ([][]float64, error) {
	return Compute(trace.FromSeries(x), opts...)
}

// computeChannel runs the three pipeline stages on one channel.
func computeChannel(x []float64, cfg Config, p params) []float64 {
	f0 := baseline(x, p.tau1Samples, p.tau2Samples, p.minPeriods)
	raw := rawRatio(x, f0, cfg.LowBackground, cfg.Offset)

	return smoothRatio(raw, p.tau0Samples, p.minPeriods)
}

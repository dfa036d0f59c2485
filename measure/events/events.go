package events

import (
	"github.com/cwbudde/algo-vecmath"
)

// Event describes one detected transient.
type Event struct {
	Onset     int     // first sample at or above the onset threshold
	Peak      int     // sample of maximum amplitude
	End       int     // first sample past the event
	Amplitude float64 // dF/F at the peak
	Area      float64 // sum of dF/F over [Onset, End)
}

// Duration returns the event length in samples.
func (e Event) Duration() int {
	return e.End - e.Onset
}

// Detect scans a dF/F trace and returns the transients it contains, in
// temporal order.
func Detect(x []float64, opts ...Option) []Event {
	cfg := ApplyOptions(opts...)

	release := cfg.Release
	if release <= 0 || release > cfg.Threshold {
		release = cfg.Threshold / 2
	}

	var out []Event

	for i := 0; i < len(x); i++ {
		if x[i] < cfg.Threshold {
			continue
		}

		onset := i
		peak := i

		for i < len(x) && x[i] >= release {
			if x[i] > x[peak] {
				peak = i
			}

			i++
		}

		if i-onset >= cfg.MinDuration {
			out = append(out, Event{
				Onset:     onset,
				Peak:      peak,
				End:       i,
				Amplitude: x[peak],
				Area:      vecmath.Sum(x[onset:i]),
			})
		}

		i += cfg.Refractory
	}

	return out
}

// Rate returns events per second for a trace of the given length sampled at
// fps Hz.
func Rate(events []Event, samples int, fps float64) float64 {
	if samples <= 0 || fps <= 0 {
		return 0
	}

	return float64(len(events)) * fps / float64(samples)
}

package rolling

import "math"

// Mean computes a trailing boxcar (uniformly weighted) moving average.
//
// A result is defined only when the window is complete and every entry in it
// is a real observation; otherwise out[i] is NaN. There is no partial-window
// fallback: the first window-1 positions are always NaN.
func Mean(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = math.NaN()
	}

	if window <= 0 {
		return out
	}

	var sum float64

	missing := 0

	for i, v := range x {
		if math.IsNaN(v) {
			missing++
		} else {
			sum += v
		}

		if j := i - window; j >= 0 {
			if math.IsNaN(x[j]) {
				missing--
			} else {
				sum -= x[j]
			}
		}

		if i >= window-1 && missing == 0 {
			out[i] = sum / float64(window)
		}
	}

	return out
}

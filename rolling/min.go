package rolling

import "math"

// Min computes a trailing moving minimum with a validity floor.
//
// out[i] is the minimum over the real observations in the window ending at i,
// provided at least minPeriods of them are present; otherwise NaN. Partial
// windows at the start of the series are allowed as long as the floor is met.
// minPeriods values below 1 are treated as 1.
//
// The implementation keeps a monotonic deque of candidate indices, so the
// whole series is processed in O(n) regardless of window length.
func Min(x []float64, window, minPeriods int) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = math.NaN()
	}

	if window <= 0 {
		return out
	}

	if minPeriods < 1 {
		minPeriods = 1
	}

	// deque holds indices of non-NaN entries with strictly increasing values;
	// the front is always the window minimum.
	deque := make([]int, 0, window)
	valid := 0

	for i, v := range x {
		if len(deque) > 0 && deque[0] <= i-window {
			deque = deque[1:]
		}

		if j := i - window; j >= 0 && !math.IsNaN(x[j]) {
			valid--
		}

		if !math.IsNaN(v) {
			valid++

			for len(deque) > 0 && x[deque[len(deque)-1]] >= v {
				deque = deque[:len(deque)-1]
			}

			deque = append(deque, i)
		}

		if valid >= minPeriods {
			out[i] = x[deque[0]]
		}
	}

	return out
}

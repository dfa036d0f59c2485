package rolling

import "math"

// ExpMean computes a causal exponentially weighted moving average.
//
// halflife is the lag, in samples, at which a past observation's weight
// decays to one half; it need not be an integer. Weights renormalize over
// the observations actually seen, so early positions average over their
// shorter history instead of decaying toward zero. A non-positive halflife
// degenerates to a passthrough of the latest observation.
//
// NaN entries count as missing: they contribute no observation but still age
// the weights of earlier ones. out[i] is NaN until minPeriods observations
// have been seen; minPeriods values below 1 are treated as 1.
func ExpMean(x []float64, halflife float64, minPeriods int) []float64 {
	out := make([]float64, len(x))

	if minPeriods < 1 {
		minPeriods = 1
	}

	var decay float64
	if halflife > 0 {
		decay = math.Exp2(-1 / halflife)
	}

	var num, den float64

	seen := 0

	for i, v := range x {
		num *= decay
		den *= decay

		if !math.IsNaN(v) {
			num += v
			den++
			seen++
		}

		if seen >= minPeriods && den > 0 {
			out[i] = num / den
		} else {
			out[i] = math.NaN()
		}
	}

	return out
}

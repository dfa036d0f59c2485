package dff

import "math"

// rawRatio computes the per-sample relative deviation of the trace from its
// baseline. Samples whose baseline is still undefined come out as NaN and
// are substituted with 0, so the smoother downstream never sees NaN.
//
// In low-background mode both numerator and denominator are biased upward
// by the offset: F0 near zero would otherwise blow the ratio up, and a zero
// trace sample would turn it negative.
func rawRatio(x, f0 []float64, lowBackground bool, offset float64) []float64 {
	out := make([]float64, len(x))

	if lowBackground {
		for i := range x {
			out[i] = zeroNaN((x[i] + 2*offset - f0[i]) / (f0[i] + offset))
		}
	} else {
		for i := range x {
			out[i] = zeroNaN((x[i] - f0[i]) / f0[i])
		}
	}

	return out
}

func zeroNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return v
}

package dff

import (
	"math"

	"github.com/cwbudde/algo-fluo/rolling"
)

// smoothRatio applies the causal exponentially weighted average to the raw
// ratio. Samples before the minPeriods floor come out as NaN and are
// substituted with 0, which together with the substitution in rawRatio
// produces the documented warm-up zeros at the start of every trace.
func smoothRatio(raw []float64, halflife float64, minPeriods int) []float64 {
	out := rolling.ExpMean(raw, halflife, minPeriods)

	for i, v := range out {
		if math.IsNaN(v) {
			out[i] = 0
		}
	}

	return out
}

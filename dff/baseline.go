package dff

import (
	"math"

	"github.com/cwbudde/algo-fluo/rolling"
)

// baselineEpsilon is the float64 machine epsilon. Adding it after the
// trailing minimum keeps F0 strictly positive, so the ratio stage never
// divides by an exact zero.
const baselineEpsilon = 0x1p-52

// baseline estimates the slowly varying fluorescence floor F0(t): a trailing
// boxcar average of width window, then a trailing minimum over lookback
// samples, then epsilon.
//
// The boxcar stage requires a full window and carries no minPeriods floor;
// only the minimum stage does. The protocol reference specifies this
// asymmetry, so it is kept as is.
func baseline(x []float64, window, lookback, minPeriods int) []float64 {
	f0 := rolling.Min(rolling.Mean(x, window), lookback, minPeriods)

	for i, v := range f0 {
		if !math.IsNaN(v) {
			f0[i] = v + baselineEpsilon
		}
	}

	return f0
}

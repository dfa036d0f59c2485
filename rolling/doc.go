// Package rolling provides trailing-window statistics over float64 series.
//
// All functions share one convention for "undefined": positions where the
// window does not yet hold enough observations carry math.NaN(), and NaN
// inputs count as missing observations rather than being fed into the
// arithmetic. A NaN output therefore always means "insufficient history",
// never a propagated arithmetic accident. Callers decide what to substitute
// downstream.
//
// Windows are trailing (causal): the window at position i covers
// x[i-window+1 .. i]. There is no look-ahead.
package rolling

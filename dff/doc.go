// Package dff computes normalized fluorescence change (dF/F) from raw
// calcium-imaging traces, following the baseline-estimation protocol of
// Jia, Rochefort, Chen & Konnerth, Nature Protocols 5, 28-35 (2010),
// https://www.nature.com/articles/nprot.2010.169.
//
// The pipeline has three stages, applied independently to each channel:
//
//  1. Baseline F0(t): a trailing boxcar average of width tau1 followed by a
//     trailing minimum over the preceding tau2 seconds, plus machine epsilon
//     so the baseline is strictly positive.
//  2. Raw ratio: (F - F0) / F0, or the offset variant
//     (F + 2c - F0) / (F0 + c) for low-background recordings such as photon
//     counting, three-photon excitation or sparse acquisition, where F0 can
//     sit at the noise floor.
//  3. Smoothing: a causal exponentially weighted average with half-life tau0.
//
// # Usage
//
//	out, err := dff.Compute(data,
//	    dff.WithFrameRate(30),
//	    dff.WithTimeConstants(0.1, 0.35, 2.0),
//	)
//
// The output matrix has the same channels-by-time shape as the input. The
// leading frames of every trace are exactly 0 rather than a measurement:
// the rolling operations need tau1/tau2 worth of history before they are
// defined, and undefined values are substituted with 0. This warm-up
// artifact is expected behavior, not an error.
package dff

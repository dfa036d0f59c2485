// Package events detects fluorescence transients (calcium events) in
// dF/F traces.
//
// Detection is a hysteresis threshold pass: an event opens when the trace
// reaches the onset threshold, and closes when it falls below the release
// level. Events shorter than the configured minimum duration are discarded,
// and an optional refractory gap suppresses re-triggering on the decay tail.
//
// The input is expected to be a processed dF/F trace (see the dff package),
// where quiescent periods sit near zero.
package events

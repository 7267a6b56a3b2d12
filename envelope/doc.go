// Package envelope reduces several aligned waveforms to one pointwise
// summary series: elementwise maximum, minimum, or RMS across all inputs at
// each time index.
//
// "Envelope" here is the plotting-domain term for "aggregate across channels
// at every time sample" — an instantaneous columnwise statistic over the
// (waveforms × samples) stack, not the classical analytic-signal envelope.
// No smoothing, windowing or interpolation is applied.
//
// All inputs must share one time base. The reducers adopt the first input's
// Time slice as the result's time base without per-element comparison, but
// they do guard the one silent failure mode: inputs of differing sample
// counts yield ErrMisaligned instead of being truncated or padded.
//
// Empty input is not an error — every reducer returns an empty Series.
package envelope

// Package wave generates deterministic sampled representations of periodic
// signals: sine, square (with configurable duty cycle), sawtooth and triangle.
//
// 🚀 What is wave?
//
//	A pure, dependency-free signal generator. Every constructor maps a
//	parameter set (frequency, amplitude, y-offset, duration, sample rate)
//	to a Series — a pair of equal-length time and value slices — with no
//	I/O, no shared state and bit-identical results for identical inputs.
//
// ✨ Key properties:
//   - Sample count is int(sampleRate·dur) (truncating, by contract), with an
//     inclusive time grid: t[0]=0, t[N-1]=dur.
//   - amp=0 yields a perfectly flat line at the offset for every wave type.
//   - Unknown wave-type names fall back to sine — an explicit, tested
//     default arm, never an error.
//   - No NaN/Inf for inputs within the documented parameter ranges.
//
// The package does not validate or clamp its inputs; boundary clamping is
// the caller's concern (see package state). This keeps the generator
// trivially testable with out-of-range probes too.
//
// See envelope for pointwise max/min/RMS aggregation across several Series
// sharing one time base.
package wave

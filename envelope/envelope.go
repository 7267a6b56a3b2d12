// SPDX-License-Identifier: MIT
// Package: envelope
//
// envelope.go — pointwise max/min/RMS reductions over aligned waveforms.
//
// Contract (strict):
//   - Pure reductions: no I/O, no shared state, deterministic loop order.
//   - Empty input → empty Series, nil error (never a raised failure).
//   - Mismatched sample counts → ErrMisaligned.
//   - The first input's Time slice becomes the result's time base; time
//     values of later inputs are not compared, per the shared-time-base
//     precondition on the caller.
//   - Complexity: O(waveforms × samples) time, O(samples) extra memory.

package envelope

import (
	"math"

	"github.com/kboss805/waveform-generator/wave"
)

// Max computes the elementwise maximum across all inputs at each time index.
//
// For a single input the result equals that input. For any non-empty input,
// Max ≥ Min holds pointwise by construction.
func Max(series []wave.Series) (wave.Series, error) {
	n, err := alignedLen(series)
	if err != nil || n < 0 {
		return emptySeries(), err
	}

	out := make([]float64, n)
	copy(out, series[0].Values)
	for _, s := range series[1:] {
		for i, v := range s.Values {
			if v > out[i] {
				out[i] = v
			}
		}
	}

	return wave.Series{Time: series[0].Time, Values: out}, nil
}

// Min computes the elementwise minimum across all inputs at each time index.
func Min(series []wave.Series) (wave.Series, error) {
	n, err := alignedLen(series)
	if err != nil || n < 0 {
		return emptySeries(), err
	}

	out := make([]float64, n)
	copy(out, series[0].Values)
	for _, s := range series[1:] {
		for i, v := range s.Values {
			if v < out[i] {
				out[i] = v
			}
		}
	}

	return wave.Series{Time: series[0].Time, Values: out}, nil
}

// RMS computes sqrt(mean(xᵢ²)) across all inputs at each time index.
//
// This is an amplitude-domain RMS of the raw samples — it includes any
// y-offset contribution, it is not an AC-only measure. For a single input
// the result is the elementwise absolute value of that input. The output is
// non-negative and finite for finite inputs.
func RMS(series []wave.Series) (wave.Series, error) {
	n, err := alignedLen(series)
	if err != nil || n < 0 {
		return emptySeries(), err
	}

	out := make([]float64, n)
	for _, s := range series {
		for i, v := range s.Values {
			out[i] += v * v
		}
	}
	inv := 1.0 / float64(len(series))
	for i := range out {
		out[i] = math.Sqrt(out[i] * inv)
	}

	return wave.Series{Time: series[0].Time, Values: out}, nil
}

// alignedLen validates the shared sample base and returns the common sample
// count. It returns −1 with a nil error for empty input (the documented
// empty-in/empty-out case) and ErrMisaligned when any input's sample count
// differs from the first input's.
func alignedLen(series []wave.Series) (int, error) {
	if len(series) == 0 {
		return -1, nil
	}

	n := series[0].Len()
	for _, s := range series[1:] {
		if s.Len() != n {
			return 0, ErrMisaligned
		}
	}

	return n, nil
}

// emptySeries returns the canonical empty result (non-nil, zero-length
// slices, safe to serialize).
func emptySeries() wave.Series {
	return wave.Series{Time: []float64{}, Values: []float64{}}
}

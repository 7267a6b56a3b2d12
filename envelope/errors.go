// SPDX-License-Identifier: MIT
// Package envelope: sentinel error set.
// Reducers MUST return these sentinels and tests MUST check them via
// errors.Is. No reducer panics on user input.

package envelope

import "errors"

// ErrMisaligned indicates that the aggregated waveforms do not share one
// sample base: at least one input's sample count differs from the first
// input's. Aggregation across unequal grids is undefined, so it is rejected
// explicitly rather than silently reproduced.
var ErrMisaligned = errors.New("envelope: waveforms do not share one sample base")

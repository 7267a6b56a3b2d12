// SPDX-License-Identifier: MIT
// Package: wave
//
// types.go — wave type enumeration, parameter record and sampled series.

package wave

import "strings"

// Type identifies one of the supported periodic wave shapes.
//
// The zero value is Sine, which doubles as the documented fallback for any
// unrecognized type (see ParseType and Generate).
type Type int

const (
	// Sine is the default wave shape: offset + (amp/2)·sin(2πft).
	Sine Type = iota

	// Square alternates between offset±amp/2, high first, with a
	// configurable duty cycle (percentage of each period spent high).
	Square

	// Sawtooth ramps linearly from offset−amp/2 to offset+amp/2 over each
	// period, then resets discontinuously.
	Sawtooth

	// Triangle ramps symmetrically up then down over each period.
	Triangle
)

// typeNames maps Type values to their canonical lowercase names.
var typeNames = [...]string{"sine", "square", "sawtooth", "triangle"}

// String returns the canonical lowercase name of t ("sine" for out-of-range
// values, mirroring the generation fallback).
func (t Type) String() string {
	if t < Sine || t > Triangle {
		return typeNames[Sine]
	}

	return typeNames[t]
}

// ParseType maps a wave-type name to its Type, case-insensitively.
//
// The legacy name "pulse" is accepted as an alias of Square. Any other
// unknown name yields Sine — the documented fallback, never an error.
func ParseType(name string) Type {
	switch strings.ToLower(name) {
	case "square", "pulse":
		return Square
	case "sawtooth":
		return Sawtooth
	case "triangle":
		return Triangle
	default:
		return Sine
	}
}

// Params bundles every knob a single waveform needs. The generator trusts
// these values as-is; clamping to the documented ranges happens at the
// state-setter boundary (package state), not here.
type Params struct {
	Type       Type    // wave shape; out-of-range values fall back to Sine
	Freq       float64 // frequency in Hz
	Amp        float64 // peak-to-peak amplitude; samples span Offset ± Amp/2
	Offset     float64 // y-axis offset
	Duty       float64 // duty cycle percentage; Square only
	Dur        float64 // duration in seconds
	SampleRate int     // samples per second
}

// Series is one sampled waveform: Time is monotonically increasing with
// Time[0]==0 and Time[len-1]==duration, Values holds the matching samples.
// Both slices always have equal length.
type Series struct {
	Time   []float64
	Values []float64
}

// Len returns the number of samples in the series.
func (s Series) Len() int { return len(s.Values) }

// Empty reports whether the series holds no samples.
func (s Series) Empty() bool { return len(s.Values) == 0 }

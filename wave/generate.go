// SPDX-License-Identifier: MIT
// Package: wave
//
// generate.go — sampled waveform constructors.
//
// Contract (strict):
//   - Pure functions: no I/O, no globals, referentially transparent.
//   - Sample count N = int(sampleRate·dur), truncating. N<=0 yields an
//     empty Series, never an error.
//   - Time grid is endpoint-inclusive: t[i] = dur·i/(N−1), t[N−1] = dur
//     exactly. For N==1 the single sample sits at t=0.
//   - No validation; callers pass already-clamped parameters. Results stay
//     finite for any input inside the documented ranges, including amp=0.

package wave

import "math"

const (
	twoPi = 2 * math.Pi

	// percent converts a duty-cycle percentage to a period fraction.
	percent = 100.0

	// sawWidthFull makes the piecewise ramp rise over the whole period
	// (classic sawtooth); sawWidthHalf splits it into a symmetric rise
	// and fall (triangle).
	sawWidthFull = 1.0
	sawWidthHalf = 0.5
)

// timeBase returns the shared sample grid for one (dur, sampleRate) pair:
// N = int(sampleRate·dur) evenly spaced points from 0 to dur inclusive.
// The truncating conversion is deliberate and load-bearing — callers and
// exporters rely on this exact count.
func timeBase(dur float64, sampleRate int) []float64 {
	n := int(float64(sampleRate) * dur)
	if n <= 0 {
		return []float64{}
	}

	t := make([]float64, n)
	if n == 1 {
		return t // single sample at t=0
	}

	step := dur / float64(n-1)
	for i := 1; i < n; i++ {
		t[i] = float64(i) * step
	}
	t[n-1] = dur // pin the endpoint against rounding drift

	return t
}

// SineWave samples offset + (amp/2)·sin(2πf·t) over the shared grid.
func SineWave(freq, amp, offset, dur float64, sampleRate int) Series {
	t := timeBase(dur, sampleRate)
	half := amp / 2
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = offset + half*math.Sin(twoPi*freq*ti)
	}

	return Series{Time: t, Values: y}
}

// SquareWave samples a rising-edge-first square wave: the value is
// offset+amp/2 for the leading duty fraction of every period and
// offset−amp/2 otherwise. duty is a percentage in [1,100].
func SquareWave(freq, amp, duty, offset, dur float64, sampleRate int) Series {
	t := timeBase(dur, sampleRate)
	half := amp / 2
	high := duty / percent * twoPi // phase span spent at the high level
	y := make([]float64, len(t))
	var phase float64
	for i, ti := range t {
		phase = math.Mod(twoPi*freq*ti, twoPi)
		if phase < high {
			y[i] = offset + half
		} else {
			y[i] = offset - half
		}
	}

	return Series{Time: t, Values: y}
}

// SawtoothWave samples a linear ramp from offset−amp/2 to offset+amp/2 over
// each period, resetting discontinuously at every period boundary.
func SawtoothWave(freq, amp, offset, dur float64, sampleRate int) Series {
	return rampWave(freq, amp, offset, dur, sampleRate, sawWidthFull)
}

// TriangleWave samples a symmetric ramp: up for the first half of each
// period, down for the second half, spanning offset±amp/2.
func TriangleWave(freq, amp, offset, dur float64, sampleRate int) Series {
	return rampWave(freq, amp, offset, dur, sampleRate, sawWidthHalf)
}

// rampWave is the shared piecewise-ramp kernel behind Sawtooth and Triangle.
// width in (0,1] is the fraction of each period spent rising:
//
//	phase <  width·2π : y = phase/(π·width) − 1        (ramp −1 → +1)
//	phase >= width·2π : y = (π·(width+1) − phase)/(π·(1−width))  (ramp back)
//
// width=1 keeps every phase in the rising branch, so the 1−width division
// is never reached.
func rampWave(freq, amp, offset, dur float64, sampleRate int, width float64) Series {
	t := timeBase(dur, sampleRate)
	half := amp / 2
	rise := width * twoPi
	y := make([]float64, len(t))
	var phase, unit float64
	for i, ti := range t {
		phase = math.Mod(twoPi*freq*ti, twoPi)
		if phase < rise {
			unit = phase/(math.Pi*width) - 1
		} else {
			unit = (math.Pi*(width+1) - phase) / (math.Pi * (1 - width))
		}
		y[i] = offset + half*unit
	}

	return Series{Time: t, Values: y}
}

// Generate dispatches on p.Type and samples the corresponding waveform.
// The default arm is Sine — unknown Type values are generated as sine with
// the same parameters rather than rejected.
func Generate(p Params) Series {
	switch p.Type {
	case Square:
		return SquareWave(p.Freq, p.Amp, p.Duty, p.Offset, p.Dur, p.SampleRate)
	case Sawtooth:
		return SawtoothWave(p.Freq, p.Amp, p.Offset, p.Dur, p.SampleRate)
	case Triangle:
		return TriangleWave(p.Freq, p.Amp, p.Offset, p.Dur, p.SampleRate)
	case Sine:
		return SineWave(p.Freq, p.Amp, p.Offset, p.Dur, p.SampleRate)
	default:
		return SineWave(p.Freq, p.Amp, p.Offset, p.Dur, p.SampleRate)
	}
}

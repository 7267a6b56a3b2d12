// Package state holds the mutable configuration that feeds the wave and
// envelope cores: up to five per-waveform parameter records plus the shared
// duration, sample rate, selection index and display toggles.
//
// This is the boundary-clamping layer: every numeric setter clamps to the
// documented range (frequency, amplitude, offset, duty cycle, duration), so
// the pure generators downstream can trust their inputs. It is an explicit
// struct passed by the caller — deliberately not an ambient global — and it
// performs no numeric work of its own beyond bounds handling.
package state

// SPDX-License-Identifier: MIT
// Package: state
//
// state.go — waveform records and the session-level configuration set.
//
// Contract:
//   - All clamping happens here, at the setter boundary. Downstream
//     generators receive only in-range values.
//   - Waveform IDs are dense 0..len-1 and are reassigned (with palette
//     colors) after removal, matching the selection UI's expectations.
//   - No global singleton: callers own their State instance.

package state

import (
	"fmt"

	"github.com/kboss805/waveform-generator/wave"
)

// Documented parameter ranges. Setters clamp to these bounds.
const (
	FreqMin = 0.1
	FreqMax = 100.0

	AmpMin = 0.0
	AmpMax = 10.0

	OffsetMin = 0.0
	OffsetMax = 10.0

	DutyMin = 1.0
	DutyMax = 100.0

	DurationMin = 0.5
	DurationMax = 120.0

	// SampleRate is fixed for the whole session.
	SampleRate = 1000

	// MaxWaveforms and MinWaveforms bound the live waveform set.
	MaxWaveforms = 5
	MinWaveforms = 1
)

// Defaults for a freshly added waveform.
const (
	defaultFreq = 5.0
	defaultAmp  = 5.0
	defaultDuty = 50.0
)

// Color is an RGB triple used by the rendering layer.
type Color [3]uint8

// palette cycles through five distinguishable plot colors.
var palette = [MaxWaveforms]Color{
	{255, 255, 0},   // yellow
	{0, 255, 255},   // cyan
	{255, 0, 255},   // magenta
	{0, 255, 0},     // green
	{255, 165, 0},   // orange
}

// Waveform is the parameter record for one configurable signal. Numeric
// fields are private; the clamping setters are the only mutation path.
type Waveform struct {
	ID      int
	Type    wave.Type
	Color   Color
	Enabled bool

	freq   float64
	amp    float64
	offset float64
	duty   float64
	name   string // custom display name; empty means "Waveform <ID+1>"
}

// NewWaveform returns a default sine waveform with the given ID and color.
func NewWaveform(id int, color Color) *Waveform {
	return &Waveform{
		ID:      id,
		Type:    wave.Sine,
		Color:   color,
		Enabled: true,
		freq:    defaultFreq,
		amp:     defaultAmp,
		duty:    defaultDuty,
	}
}

// Freq returns the clamped frequency in Hz.
func (w *Waveform) Freq() float64 { return w.freq }

// SetFreq clamps to [FreqMin, FreqMax].
func (w *Waveform) SetFreq(v float64) { w.freq = clamp(v, FreqMin, FreqMax) }

// Amp returns the clamped amplitude.
func (w *Waveform) Amp() float64 { return w.amp }

// SetAmp clamps to [AmpMin, AmpMax].
func (w *Waveform) SetAmp(v float64) { w.amp = clamp(v, AmpMin, AmpMax) }

// Offset returns the clamped y-axis offset.
func (w *Waveform) Offset() float64 { return w.offset }

// SetOffset clamps to [OffsetMin, OffsetMax].
func (w *Waveform) SetOffset(v float64) { w.offset = clamp(v, OffsetMin, OffsetMax) }

// Duty returns the clamped duty-cycle percentage.
func (w *Waveform) Duty() float64 { return w.duty }

// SetDuty clamps to [DutyMin, DutyMax].
func (w *Waveform) SetDuty(v float64) { w.duty = clamp(v, DutyMin, DutyMax) }

// SetType parses and stores the wave type; unknown names become sine via
// the documented wave.ParseType fallback.
func (w *Waveform) SetType(name string) { w.Type = wave.ParseType(name) }

// DisplayName returns the custom name when set, otherwise "Waveform <n>"
// with the 1-based position.
func (w *Waveform) DisplayName() string {
	if w.name != "" {
		return w.name
	}

	return fmt.Sprintf("Waveform %d", w.ID+1)
}

// SetDisplayName overrides the default display name. An empty string
// restores the default.
func (w *Waveform) SetDisplayName(name string) { w.name = name }

// Params assembles the generator input for this waveform under the given
// session duration and sample rate.
func (w *Waveform) Params(dur float64, sampleRate int) wave.Params {
	return wave.Params{
		Type:       w.Type,
		Freq:       w.freq,
		Amp:        w.amp,
		Offset:     w.offset,
		Duty:       w.duty,
		Dur:        dur,
		SampleRate: sampleRate,
	}
}

// State is the session-level configuration: the live waveform list plus the
// shared time settings and display toggles.
type State struct {
	SampleRate  int
	ActiveIndex int

	ShowMaxEnv bool
	ShowMinEnv bool
	ShowRMSEnv bool
	AutoScale  bool
	ShowGrid   bool

	Waveforms []*Waveform

	duration float64
}

// New returns a session with one default sine waveform, a 1 s duration and
// the fixed sample rate. AutoScale and the grid start on; envelopes off.
func New() *State {
	s := &State{
		SampleRate: SampleRate,
		AutoScale:  true,
		ShowGrid:   true,
		duration:   1.0,
	}
	s.Waveforms = []*Waveform{NewWaveform(0, palette[0])}

	return s
}

// Duration returns the clamped session duration in seconds.
func (s *State) Duration() float64 { return s.duration }

// SetDuration clamps to [DurationMin, DurationMax].
func (s *State) SetDuration(v float64) { s.duration = clamp(v, DurationMin, DurationMax) }

// Add appends a new default sine waveform with the next palette color and
// makes it active. Returns nil when the set is already at MaxWaveforms.
func (s *State) Add() *Waveform {
	if len(s.Waveforms) >= MaxWaveforms {
		return nil
	}

	id := len(s.Waveforms)
	w := NewWaveform(id, palette[id%len(palette)])
	s.Waveforms = append(s.Waveforms, w)
	s.ActiveIndex = id

	return w
}

// Remove deletes the waveform with the given ID. It refuses to shrink below
// MinWaveforms and reports whether anything was removed. Surviving
// waveforms get dense IDs reassigned but keep their colors, and the active
// index is re-bounded.
func (s *State) Remove(id int) bool {
	if len(s.Waveforms) <= MinWaveforms {
		return false
	}

	kept := s.Waveforms[:0]
	removed := false
	for _, w := range s.Waveforms {
		if w.ID == id {
			removed = true
			continue
		}
		kept = append(kept, w)
	}
	s.Waveforms = kept
	if !removed {
		return false
	}

	for idx, w := range s.Waveforms {
		w.ID = idx
	}
	if s.ActiveIndex >= len(s.Waveforms) {
		s.ActiveIndex = len(s.Waveforms) - 1
	}

	return true
}

// Get returns the waveform with the given ID, or nil.
func (s *State) Get(id int) *Waveform {
	for _, w := range s.Waveforms {
		if w.ID == id {
			return w
		}
	}

	return nil
}

// Active returns the currently selected waveform, or nil when the index is
// out of bounds.
func (s *State) Active() *Waveform {
	if s.ActiveIndex >= 0 && s.ActiveIndex < len(s.Waveforms) {
		return s.Waveforms[s.ActiveIndex]
	}

	return nil
}

// Enabled returns the waveforms currently switched on, in display order.
func (s *State) Enabled() []*Waveform {
	out := make([]*Waveform, 0, len(s.Waveforms))
	for _, w := range s.Waveforms {
		if w.Enabled {
			out = append(out, w)
		}
	}

	return out
}

// CanShowEnvelopes reports whether envelope display is meaningful: it
// requires more than one enabled waveform.
func (s *State) CanShowEnvelopes() bool { return len(s.Enabled()) > 1 }

// Series generates the sampled series for one waveform under the session's
// duration and sample rate.
func (s *State) Series(w *Waveform) wave.Series {
	return wave.Generate(w.Params(s.duration, s.SampleRate))
}

// EnabledSeries generates one series per enabled waveform over the shared
// session grid — the input shape the envelope reducers expect.
func (s *State) EnabledSeries() []wave.Series {
	enabled := s.Enabled()
	out := make([]wave.Series, 0, len(enabled))
	for _, w := range enabled {
		out = append(out, s.Series(w))
	}

	return out
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

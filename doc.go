// Package waveform is a pure-Go signal workbench: generate up to five
// configurable periodic signals, aggregate them into pointwise envelopes,
// and export the sampled data — with no UI toolkit anywhere in the core.
//
// 🚀 What is waveform-generator?
//
//	A standalone library extracted from a desktop waveform analyzer.
//	The computational core is deliberately tiny and deterministic:
//		• wave/     — sine, square (duty cycle), sawtooth and triangle
//		              generators mapping parameters to sampled series
//		• envelope/ — pointwise max, min and RMS reductions across
//		              waveforms sharing one time base
//		• state/    — the clamping data model: waveform records, session
//		              duration, selection and display toggles
//		• export/   — CSV, JSON and MATLAB Level 5 MAT-file writers
//		• config/   — the INI startup profile (default.cfg)
//
// ✨ Why this shape?
//
//   - Pure functions – generators and reducers take parameters and return
//     slices; no globals, no event loop, bit-identical reruns
//   - Clamping at the boundary – the state layer owns every range check,
//     so the numeric core never validates and never fails on in-range input
//   - UI-agnostic – any frontend (or none) can call the core on demand
//
// Quick sketch:
//
//	s := wave.Generate(wave.Params{
//	    Type: wave.Square, Freq: 5, Amp: 4, Offset: 5,
//	    Duty: 50, Dur: 1, SampleRate: 1000,
//	})
//	env, err := envelope.Max([]wave.Series{s, other})
//
// See each package's doc.go for the full contracts and edge-case policy.
package waveform

// Package export serializes sampled waveforms and their envelopes to CSV,
// JSON, and MATLAB Level 5 MAT-file formats.
//
// The export surface is a consumer of the core's (name, time, values,
// parameters) tuples: it never generates or aggregates anything itself.
// All writers stream to an io.Writer; Save is the file-path front door that
// sanitizes the requested filename and dispatches on its extension
// (.csv/.mat/.json, defaulting to .csv).
//
// Text formats use fixed 6-decimal samples; the MAT writer emits each
// channel as a 1×N double matrix alongside the shared time vector.
package export

// SPDX-License-Identifier: MIT
// Package: export
//
// json.go — JSON document writer.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// jsonDocument is the on-disk shape of a JSON export.
type jsonDocument struct {
	ExportedAt string         `json:"exported_at"`
	SampleRate int            `json:"sample_rate"`
	Duration   float64        `json:"duration"`
	Waveforms  []jsonWaveform `json:"waveforms"`
	Envelopes  []jsonEnvelope `json:"envelopes,omitempty"`
}

type jsonWaveform struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Frequency float64   `json:"frequency"`
	Amplitude float64   `json:"amplitude"`
	Offset    float64   `json:"offset"`
	DutyCycle float64   `json:"duty_cycle"`
	Time      []float64 `json:"time"`
	Values    []float64 `json:"values"`
}

type jsonEnvelope struct {
	Name   string    `json:"name"`
	Time   []float64 `json:"time"`
	Values []float64 `json:"values"`
}

// WriteJSON streams the document as one indented JSON object. An empty
// document yields ErrNoData to keep format behavior consistent with CSV.
func WriteJSON(w io.Writer, doc Document) error {
	if _, err := doc.timeBase(); err != nil {
		return err
	}

	out := jsonDocument{
		ExportedAt: doc.stamp().Format(time.RFC3339),
		SampleRate: doc.SampleRate,
		Duration:   doc.Duration,
		Waveforms:  make([]jsonWaveform, 0, len(doc.Waveforms)),
	}
	for _, wf := range doc.Waveforms {
		out.Waveforms = append(out.Waveforms, jsonWaveform{
			Name:      wf.Name,
			Type:      wf.Type.String(),
			Frequency: wf.Freq,
			Amplitude: wf.Amp,
			Offset:    wf.Offset,
			DutyCycle: wf.Duty,
			Time:      wf.Series.Time,
			Values:    wf.Series.Values,
		})
	}
	for _, env := range doc.Envelopes {
		out.Envelopes = append(out.Envelopes, jsonEnvelope{
			Name:   env.Name,
			Time:   env.Series.Time,
			Values: env.Series.Values,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export: writing json: %w", err)
	}

	return nil
}

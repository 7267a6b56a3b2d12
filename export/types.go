// SPDX-License-Identifier: MIT
// Package: export
//
// types.go — export document shape, filename sanitizing and dispatch.

package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/kboss805/waveform-generator/wave"
)

// ErrNoData indicates a document with neither waveforms nor envelopes —
// there is no time base to export.
var ErrNoData = errors.New("export: no data to export")

// Waveform is one named channel plus the generation parameters recorded in
// the metadata header.
type Waveform struct {
	Name   string
	Series wave.Series

	Type   wave.Type
	Freq   float64
	Amp    float64
	Offset float64
	Duty   float64 // duty-cycle percentage; recorded for square only
}

// Envelope is one named derived channel (max/min/RMS aggregate).
type Envelope struct {
	Name   string
	Series wave.Series
}

// Document bundles everything one export operation writes. All channels
// must share the time base of the first waveform (or the first envelope
// when no waveforms are present).
type Document struct {
	Waveforms  []Waveform
	Envelopes  []Envelope
	SampleRate int       // samples per second, recorded in metadata
	Duration   float64   // seconds, recorded in metadata
	Timestamp  time.Time // zero value means "now" at write time
}

// timeBase returns the shared time vector, or ErrNoData for an empty
// document.
func (d Document) timeBase() ([]float64, error) {
	if len(d.Waveforms) > 0 {
		return d.Waveforms[0].Series.Time, nil
	}
	if len(d.Envelopes) > 0 {
		return d.Envelopes[0].Series.Time, nil
	}

	return nil, ErrNoData
}

// stamp resolves the document timestamp, defaulting to the current time.
func (d Document) stamp() time.Time {
	if d.Timestamp.IsZero() {
		return time.Now()
	}

	return d.Timestamp
}

// invalidFilenameChars matches characters rejected by common filesystems.
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// knownExtensions are the formats Save can dispatch to. The first entry is
// the default for names without a recognized extension.
var knownExtensions = []string{".csv", ".mat", ".json"}

// SanitizeFilename strips invalid filename characters and guarantees a
// known export extension: .csv, .mat and .json are preserved
// (case-insensitively), anything else gets .csv appended. A name reduced to
// nothing becomes "waveforms" with the resolved extension.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")

	ext := knownExtensions[0]
	lower := strings.ToLower(name)
	for _, known := range knownExtensions {
		if strings.HasSuffix(lower, known) {
			ext = known
			name = name[:len(name)-len(known)]
			break
		}
	}
	if name == "" {
		name = "waveforms"
	}

	return name + ext
}

// Save sanitizes name, writes doc into dir in the format selected by the
// resulting extension, and returns the full path written.
func Save(dir, name string, doc Document) (string, error) {
	clean := SanitizeFilename(name)
	path := filepath.Join(dir, clean)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	var werr error
	switch strings.ToLower(filepath.Ext(clean)) {
	case ".mat":
		werr = WriteMAT(f, doc)
	case ".json":
		werr = WriteJSON(f, doc)
	default:
		werr = WriteCSV(f, doc)
	}
	if werr != nil {
		return "", werr
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: closing %s: %w", path, err)
	}

	return path, nil
}

// eachChannel visits every channel (waveforms first, then envelopes) in
// export order.
func (d Document) eachChannel(fn func(name string, s wave.Series)) {
	for _, w := range d.Waveforms {
		fn(w.Name, w.Series)
	}
	for _, e := range d.Envelopes {
		fn(e.Name, e.Series)
	}
}

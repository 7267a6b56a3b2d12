// SPDX-License-Identifier: MIT
// Package: export
//
// csv.go — comment-headed CSV writer.
//
// Layout:
//   # Exported: <timestamp>
//   # <name>: <Type>, <freq> Hz, <amp> amplitude[, <duty>% duty cycle]
//   # <envelope>: Computed from <n> waveforms
//   # Sample Rate: <rate> S/s, Duration: <dur>s
//   Time (s),<name>,...
//   <fixed 6-decimal rows>

package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kboss805/waveform-generator/wave"
)

// csvTimestampLayout matches the original export header format.
const csvTimestampLayout = "2006-01-02 15:04:05"

// WriteCSV streams the document as comment-headed CSV. The shared time base
// comes from the first waveform (or first envelope); a document with no
// channels at all yields ErrNoData.
func WriteCSV(w io.Writer, doc Document) error {
	timeBase, err := doc.timeBase()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	// Metadata block.
	fmt.Fprintf(bw, "# Exported: %s\n", doc.stamp().Format(csvTimestampLayout))
	for _, wf := range doc.Waveforms {
		fmt.Fprintf(bw, "# %s: %s, %g Hz, %g amplitude", wf.Name, titleCase(wf.Type.String()), wf.Freq, wf.Amp)
		if wf.Type == wave.Square {
			fmt.Fprintf(bw, ", %g%% duty cycle", wf.Duty)
		}
		bw.WriteByte('\n')
	}
	for _, env := range doc.Envelopes {
		fmt.Fprintf(bw, "# %s: Computed from %d waveforms\n", env.Name, len(doc.Waveforms))
	}
	fmt.Fprintf(bw, "# Sample Rate: %d S/s, Duration: %gs\n", doc.SampleRate, doc.Duration)

	// Column header row.
	headers := []string{"Time (s)"}
	doc.eachChannel(func(name string, _ wave.Series) {
		headers = append(headers, name)
	})
	fmt.Fprintln(bw, strings.Join(headers, ","))

	// Data rows, fixed 6-decimal.
	for i := range timeBase {
		fmt.Fprintf(bw, "%.6f", timeBase[i])
		doc.eachChannel(func(_ string, s wave.Series) {
			fmt.Fprintf(bw, ",%.6f", s.Values[i])
		})
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: writing csv: %w", err)
	}

	return nil
}

// titleCase upper-cases the first letter of a wave-type name for the
// metadata header ("square" → "Square").
func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

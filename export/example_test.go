package export_test

import (
	"fmt"
	"os"
	"time"

	"github.com/kboss805/waveform-generator/export"
	"github.com/kboss805/waveform-generator/wave"
)

// ExampleWriteCSV exports one tiny hand-built channel with a pinned
// timestamp, showing the full on-disk layout.
func ExampleWriteCSV() {
	doc := export.Document{
		Waveforms: []export.Waveform{{
			Name:   "Sine1",
			Series: wave.Series{Time: []float64{0, 0.5, 1}, Values: []float64{1, 2, 3}},
			Type:   wave.Sine,
			Freq:   5.0,
			Amp:    2.0,
		}},
		SampleRate: 1000,
		Duration:   1.0,
		Timestamp:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	if err := export.WriteCSV(os.Stdout, doc); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// # Exported: 2024-01-02 03:04:05
	// # Sine1: Sine, 5 Hz, 2 amplitude
	// # Sample Rate: 1000 S/s, Duration: 1s
	// Time (s),Sine1
	// 0.000000,1.000000
	// 0.500000,2.000000
	// 1.000000,3.000000
}

// ExampleSanitizeFilename demonstrates extension handling.
func ExampleSanitizeFilename() {
	fmt.Println(export.SanitizeFilename("session<1>"))
	fmt.Println(export.SanitizeFilename("session.mat"))
	fmt.Println(export.SanitizeFilename(""))
	// Output:
	// session1.csv
	// session.mat
	// waveforms.csv
}

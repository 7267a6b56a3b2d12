// SPDX-License-Identifier: MIT
// Package: config
//
// config.go — INI profile reader/writer built on gopkg.in/ini.v1.

package config

import (
	"fmt"
	"strconv"

	"gopkg.in/ini.v1"
)

// Filename is the conventional profile name next to the executable.
const Filename = "default.cfg"

// Profile sections and keys.
const (
	sectionGlobal   = "global"
	sectionDefaults = "waveform_defaults"
	sectionDisplay  = "display"
)

// Settings holds every profile value with its built-in default.
type Settings struct {
	Duration   float64 // seconds
	Frequency  float64 // Hz
	Amplitude  float64
	Offset     float64
	DutyCycle  float64 // percent
	WaveType   string  // sine, square, sawtooth, triangle
	YAxisTitle string
	YMin       float64
	YMax       float64
}

// Defaults returns the built-in profile used when default.cfg is absent or
// a key is missing/invalid.
func Defaults() Settings {
	return Settings{
		Duration:   10.0,
		Frequency:  0.2,
		Amplitude:  2.0,
		Offset:     8.0,
		DutyCycle:  50.0,
		WaveType:   "sine",
		YAxisTitle: "Amplitude",
		YMin:       0.0,
		YMax:       10.0,
	}
}

// validWaveTypes lists the names Load accepts for the type key; anything
// else keeps the default.
var validWaveTypes = map[string]bool{
	"sine":     true,
	"square":   true,
	"sawtooth": true,
	"triangle": true,
}

// Load reads the profile at path on top of Defaults. Every failure mode —
// missing file, missing key, malformed float, unknown type name — falls
// back to the default for that value; Load itself never fails.
func Load(path string) Settings {
	s := Defaults()

	cfg, err := ini.Load(path)
	if err != nil {
		return s
	}

	readFloat(cfg, sectionGlobal, "duration", &s.Duration)
	readFloat(cfg, sectionDefaults, "frequency", &s.Frequency)
	readFloat(cfg, sectionDefaults, "amplitude", &s.Amplitude)
	readFloat(cfg, sectionDefaults, "offset", &s.Offset)
	readFloat(cfg, sectionDefaults, "duty_cycle", &s.DutyCycle)

	if key, err := cfg.Section(sectionDefaults).GetKey("type"); err == nil {
		if name := key.String(); validWaveTypes[name] {
			s.WaveType = name
		}
	}

	if key, err := cfg.Section(sectionDisplay).GetKey("y_axis_title"); err == nil {
		s.YAxisTitle = key.String()
	}
	readFloat(cfg, sectionDisplay, "y_min", &s.YMin)
	readFloat(cfg, sectionDisplay, "y_max", &s.YMax)

	return s
}

// Save writes the profile to path with the documented comments.
func Save(path string, s Settings) error {
	cfg := ini.Empty()

	global, err := cfg.NewSection(sectionGlobal)
	if err != nil {
		return fmt.Errorf("config: building profile: %w", err)
	}
	newKey(global, "duration", floatString(s.Duration), "# Wave duration in seconds (0.5 - 120.0)")

	defaults, err := cfg.NewSection(sectionDefaults)
	if err != nil {
		return fmt.Errorf("config: building profile: %w", err)
	}
	newKey(defaults, "type", s.WaveType, "# Default waveform type: sine, square, sawtooth, triangle")
	newKey(defaults, "frequency", floatString(s.Frequency), "# Frequency in Hz (0.1 - 100.0)")
	newKey(defaults, "amplitude", floatString(s.Amplitude), "# Amplitude (0.0 - 10.0)")
	newKey(defaults, "offset", floatString(s.Offset), "# Y-axis offset (0.0 - 10.0)")
	newKey(defaults, "duty_cycle", floatString(s.DutyCycle), "# Duty cycle percentage (1 - 100, Square waves only)")

	display, err := cfg.NewSection(sectionDisplay)
	if err != nil {
		return fmt.Errorf("config: building profile: %w", err)
	}
	newKey(display, "y_axis_title", s.YAxisTitle, "# Y-axis label for the plot")
	newKey(display, "y_min", floatString(s.YMin), "# Y-axis minimum and maximum values")
	newKey(display, "y_max", floatString(s.YMax), "")

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("config: saving %s: %w", path, err)
	}

	return nil
}

// readFloat copies a parseable float key into dest, silently keeping the
// default otherwise.
func readFloat(cfg *ini.File, section, name string, dest *float64) {
	key, err := cfg.Section(section).GetKey(name)
	if err != nil {
		return
	}
	if v, err := key.Float64(); err == nil {
		*dest = v
	}
}

// newKey adds one commented key; section.NewKey only fails on empty names,
// which never happens here.
func newKey(section *ini.Section, name, value, comment string) {
	key, _ := section.NewKey(name, value)
	if key != nil && comment != "" {
		key.Comment = comment
	}
}

// floatString renders a float the shortest way that round-trips.
func floatString(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

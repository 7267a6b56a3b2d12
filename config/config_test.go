package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kboss805/waveform-generator/config"
)

// TestLoad_MissingFile: absent profiles yield the built-in defaults.
func TestLoad_MissingFile(t *testing.T) {
	s := config.Load(filepath.Join(t.TempDir(), "nope.cfg"))
	assert.Equal(t, config.Defaults(), s)
}

// TestLoad_CompleteProfile reads every section and key.
func TestLoad_CompleteProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	profile := `# Waveform Analyzer - Default Configuration

[global]
duration = 30.0

[waveform_defaults]
type = triangle
frequency = 2.5
amplitude = 4.0
offset = 1.5
duty_cycle = 75.0

[display]
y_axis_title = Voltage (V)
y_min = -5.0
y_max = 15.0
`
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o644))

	s := config.Load(path)
	assert.Equal(t, 30.0, s.Duration)
	assert.Equal(t, "triangle", s.WaveType)
	assert.Equal(t, 2.5, s.Frequency)
	assert.Equal(t, 4.0, s.Amplitude)
	assert.Equal(t, 1.5, s.Offset)
	assert.Equal(t, 75.0, s.DutyCycle)
	assert.Equal(t, "Voltage (V)", s.YAxisTitle)
	assert.Equal(t, -5.0, s.YMin)
	assert.Equal(t, 15.0, s.YMax)
}

// TestLoad_InvalidValuesFallBack: malformed floats and unknown type names
// keep their defaults without failing the whole load.
func TestLoad_InvalidValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	profile := `[global]
duration = not-a-number

[waveform_defaults]
type = helix
frequency = 3.0
`
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o644))

	s := config.Load(path)
	def := config.Defaults()
	assert.Equal(t, def.Duration, s.Duration, "malformed duration keeps the default")
	assert.Equal(t, def.WaveType, s.WaveType, "unknown type keeps the default")
	assert.Equal(t, 3.0, s.Frequency, "valid keys in the same file still load")
}

// TestLoad_PartialProfile: missing sections keep defaults for their keys.
func TestLoad_PartialProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	require.NoError(t, os.WriteFile(path, []byte("[global]\nduration = 42\n"), 0o644))

	s := config.Load(path)
	def := config.Defaults()
	assert.Equal(t, 42.0, s.Duration)
	assert.Equal(t, def.Frequency, s.Frequency)
	assert.Equal(t, def.YAxisTitle, s.YAxisTitle)
}

// TestSaveLoad_RoundTrip: a saved profile loads back identically.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	want := config.Settings{
		Duration:   60.0,
		Frequency:  1.25,
		Amplitude:  7.5,
		Offset:     2.0,
		DutyCycle:  33.0,
		WaveType:   "square",
		YAxisTitle: "Current (A)",
		YMin:       -1.0,
		YMax:       11.0,
	}

	require.NoError(t, config.Save(path, want))
	assert.Equal(t, want, config.Load(path))
}

// TestSave_WritesComments: the profile documents its own ranges.
func TestSave_WritesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	require.NoError(t, config.Save(path, config.Defaults()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "Wave duration in seconds")
	assert.Contains(t, content, "Duty cycle percentage")
	assert.Contains(t, content, "[waveform_defaults]")
	assert.Contains(t, content, "[display]")
}

// TestSave_Unwritable: saving into a missing directory reports an error.
func TestSave_Unwritable(t *testing.T) {
	err := config.Save(filepath.Join(t.TempDir(), "missing", "dir", config.Filename), config.Defaults())
	assert.Error(t, err, "unwritable destinations must surface an error")
}

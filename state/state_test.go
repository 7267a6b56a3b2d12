package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kboss805/waveform-generator/state"
	"github.com/kboss805/waveform-generator/wave"
)

// TestState_InitialSession verifies the defaults of a fresh session.
func TestState_InitialSession(t *testing.T) {
	s := state.New()

	require.Len(t, s.Waveforms, 1, "fresh session starts with one waveform")
	assert.Equal(t, wave.Sine, s.Waveforms[0].Type)
	assert.True(t, s.Waveforms[0].Enabled)
	assert.Equal(t, 1.0, s.Duration())
	assert.Equal(t, state.SampleRate, s.SampleRate)
	assert.False(t, s.ShowMaxEnv)
	assert.False(t, s.ShowMinEnv)
	assert.False(t, s.ShowRMSEnv)
	assert.True(t, s.AutoScale)
	assert.True(t, s.ShowGrid)
}

// TestWaveform_SetterClamping checks every numeric setter clamps to the
// documented range.
func TestWaveform_SetterClamping(t *testing.T) {
	w := state.NewWaveform(0, state.Color{255, 255, 0})

	w.SetFreq(0.001)
	assert.Equal(t, state.FreqMin, w.Freq(), "frequency clamps up to the minimum")
	w.SetFreq(500.0)
	assert.Equal(t, state.FreqMax, w.Freq(), "frequency clamps down to the maximum")

	w.SetAmp(-3.0)
	assert.Equal(t, state.AmpMin, w.Amp())
	w.SetAmp(15.0)
	assert.Equal(t, state.AmpMax, w.Amp())

	w.SetOffset(-1.0)
	assert.Equal(t, state.OffsetMin, w.Offset())
	w.SetOffset(99.0)
	assert.Equal(t, state.OffsetMax, w.Offset())

	w.SetDuty(0.0)
	assert.Equal(t, state.DutyMin, w.Duty())
	w.SetDuty(250.0)
	assert.Equal(t, state.DutyMax, w.Duty())
}

// TestState_DurationClamping: session duration clamps to [0.5, 120].
func TestState_DurationClamping(t *testing.T) {
	s := state.New()

	s.SetDuration(0.01)
	assert.Equal(t, state.DurationMin, s.Duration())
	s.SetDuration(1000.0)
	assert.Equal(t, state.DurationMax, s.Duration())
	s.SetDuration(10.0)
	assert.Equal(t, 10.0, s.Duration(), "in-range durations pass through")
}

// TestState_AddToLimit: the set grows to five waveforms, each addition
// becoming active, and further additions are rejected.
func TestState_AddToLimit(t *testing.T) {
	s := state.New()
	for i := 1; i < state.MaxWaveforms; i++ {
		w := s.Add()
		require.NotNil(t, w, "addition %d under the limit must succeed", i)
		assert.Equal(t, i, w.ID)
		assert.Equal(t, i, s.ActiveIndex, "new waveform becomes active")
	}

	assert.Nil(t, s.Add(), "addition beyond the limit must be rejected")
	assert.Len(t, s.Waveforms, state.MaxWaveforms)
}

// TestState_RemoveToLimit: removal works down to one waveform and no
// further.
func TestState_RemoveToLimit(t *testing.T) {
	s := state.New()
	s.Add()

	assert.True(t, s.Remove(0), "removal above the minimum succeeds")
	assert.Len(t, s.Waveforms, 1)
	assert.False(t, s.Remove(0), "removal at the minimum is rejected")
	assert.Len(t, s.Waveforms, 1)
}

// TestState_RemoveReassignsIDsKeepsColors: after removing the first of
// three waveforms, the survivors get dense IDs but keep their colors.
func TestState_RemoveReassignsIDsKeepsColors(t *testing.T) {
	s := state.New()
	s.Add()
	s.Add()
	secondColor := s.Waveforms[1].Color
	thirdColor := s.Waveforms[2].Color

	require.True(t, s.Remove(0))
	require.Len(t, s.Waveforms, 2)
	assert.Equal(t, 0, s.Waveforms[0].ID)
	assert.Equal(t, 1, s.Waveforms[1].ID)
	assert.Equal(t, secondColor, s.Waveforms[0].Color, "colors are preserved, not reassigned")
	assert.Equal(t, thirdColor, s.Waveforms[1].Color)
}

// TestState_RemoveAdjustsActiveIndex: the active index never dangles past
// the end of the list.
func TestState_RemoveAdjustsActiveIndex(t *testing.T) {
	s := state.New()
	s.Add()
	s.Add() // active index now 2

	require.True(t, s.Remove(2))
	assert.Less(t, s.ActiveIndex, len(s.Waveforms), "active index re-bounded after removal")
	assert.NotNil(t, s.Active())
}

// TestState_GetAndActive covers lookup misses.
func TestState_GetAndActive(t *testing.T) {
	s := state.New()

	assert.NotNil(t, s.Get(0))
	assert.Nil(t, s.Get(99), "unknown IDs yield nil")

	s.ActiveIndex = 42
	assert.Nil(t, s.Active(), "out-of-bounds selection yields nil")
}

// TestState_EnabledFilter: only enabled waveforms are returned, in order.
func TestState_EnabledFilter(t *testing.T) {
	s := state.New()
	s.Add()
	s.Add()
	s.Waveforms[1].Enabled = false

	enabled := s.Enabled()
	require.Len(t, enabled, 2)
	for _, w := range enabled {
		assert.True(t, w.Enabled)
	}
}

// TestState_CanShowEnvelopes: envelopes require more than one enabled
// waveform.
func TestState_CanShowEnvelopes(t *testing.T) {
	s := state.New()
	assert.False(t, s.CanShowEnvelopes(), "single waveform cannot show envelopes")

	s.Add()
	assert.True(t, s.CanShowEnvelopes())

	s.Waveforms[1].Enabled = false
	assert.False(t, s.CanShowEnvelopes(), "disabled waveforms do not count")
}

// TestWaveform_DisplayName: default and custom names.
func TestWaveform_DisplayName(t *testing.T) {
	s := state.New()
	w := s.Waveforms[0]

	assert.Equal(t, "Waveform 1", w.DisplayName())
	w.SetDisplayName("MySignal")
	assert.Equal(t, "MySignal", w.DisplayName())
	w.SetDisplayName("")
	assert.Equal(t, "Waveform 1", w.DisplayName(), "empty name restores the default")
}

// TestWaveform_SetTypeFallback: type names route through the parse
// fallback, including the legacy pulse alias.
func TestWaveform_SetTypeFallback(t *testing.T) {
	w := state.NewWaveform(0, state.Color{})

	w.SetType("triangle")
	assert.Equal(t, wave.Triangle, w.Type)
	w.SetType("pulse")
	assert.Equal(t, wave.Square, w.Type)
	w.SetType("not-a-shape")
	assert.Equal(t, wave.Sine, w.Type)
}

// TestState_EnabledSeries wires the state layer into the generator: every
// enabled waveform yields one series over the shared session grid.
func TestState_EnabledSeries(t *testing.T) {
	s := state.New()
	s.Add()
	s.Add()
	s.Waveforms[2].Enabled = false
	s.SetDuration(2.0)

	set := s.EnabledSeries()
	require.Len(t, set, 2, "one series per enabled waveform")
	for i, series := range set {
		assert.Equal(t, 2*state.SampleRate, series.Len(), "series %d over the session grid", i)
		assert.Equal(t, set[0].Time, series.Time, "series %d shares the session time base", i)
	}
}

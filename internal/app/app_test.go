package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radcurve/internal/config"
	"radcurve/internal/dose"
)

func newTestModel() Model {
	return New(dose.DefaultParameters(),
		dose.Range{Min: config.DefaultCurveMin, Max: config.DefaultCurveMax, Points: config.DefaultPoints},
		config.DefaultDistance)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNew_SeedsCurve(t *testing.T) {
	m := newTestModel()
	assert.Len(t, m.samples, config.DefaultPoints)
	assert.Equal(t, config.DefaultDistance, m.AppliedDistance())
	assert.Empty(t, m.rangeErr)
}

func TestAppliedDistance_OnlyChangesOnApply(t *testing.T) {
	m := newTestModel()

	// Focus the distance field and raise it a few steps.
	m = update(t, m, key("tab"), key("tab"), key("tab"), key("tab"))
	require.Equal(t, FieldDistance, m.focus)
	m = update(t, m, key("right"), key("right"), key("right"))

	// Editing the input must not touch the applied value.
	assert.Equal(t, config.DefaultDistance, m.AppliedDistance())
	assert.InDelta(t, 1.3, m.fields[FieldDistance].Value, 1e-9)

	// Apply commits it.
	m = update(t, m, key("enter"))
	assert.InDelta(t, 1.3, m.AppliedDistance(), 1e-9)

	// Later parameter edits leave the applied value alone.
	m = update(t, m, key("tab"), key("right"))
	assert.InDelta(t, 1.3, m.AppliedDistance(), 1e-9)
}

func TestAppliedDose_TracksParameters(t *testing.T) {
	m := newTestModel()
	before := m.AppliedDose()
	assert.InDelta(t, 50.0, before, 1e-9)

	// Lower the attenuation factor: the headline metric follows immediately
	// even though the applied distance is untouched.
	m.focus = FieldAttenuation
	m = update(t, m, key("left"), key("left"))
	assert.Less(t, m.AppliedDose(), before)
	assert.Equal(t, config.DefaultDistance, m.AppliedDistance())
}

func TestInvalidRange_KeepsPreviousCurve(t *testing.T) {
	m := newTestModel()
	prev := m.samples

	// Drag curve min above curve max.
	m.focus = FieldCurveMin
	for i := 0; i < 60; i++ {
		m = update(t, m, key("right"))
	}
	require.Greater(t, m.fields[FieldCurveMin].Value, m.fields[FieldCurveMax].Value)

	assert.NotEmpty(t, m.rangeErr)
	assert.Contains(t, m.rangeErr, "max")
	assert.Equal(t, prev[0], m.samples[0], "stale curve stays on screen")

	// Fixing the range clears the message.
	m.focus = FieldCurveMax
	for i := 0; i < 80; i++ {
		m = update(t, m, key("right"))
	}
	assert.Empty(t, m.rangeErr)
}

func TestFieldBounds_Clamp(t *testing.T) {
	m := newTestModel()

	m.focus = FieldAttenuation
	for i := 0; i < 150; i++ {
		m = update(t, m, key("right"))
	}
	assert.Equal(t, config.AttenuationMax, m.fields[FieldAttenuation].Value)

	for i := 0; i < 300; i++ {
		m = update(t, m, key("left"))
	}
	assert.Equal(t, config.AttenuationMin, m.fields[FieldAttenuation].Value)
}

func TestReset_RestoresDefaultsButKeepsSize(t *testing.T) {
	m := newTestModel()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m.focus = FieldDose
	m = update(t, m, key("right"), key("right"), key("enter"), key("r"))

	assert.Equal(t, config.DefaultReferenceDose, m.fields[FieldDose].Value)
	assert.Equal(t, config.DefaultDistance, m.AppliedDistance())
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestNotesToggle(t *testing.T) {
	m := newTestModel()
	m = update(t, m, key("n"))
	assert.True(t, m.showNotes)
	m = update(t, m, key("n"))
	assert.False(t, m.showNotes)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_BeforeFirstResize(t *testing.T) {
	m := newTestModel()
	assert.Contains(t, m.View(), "Initializing")
}

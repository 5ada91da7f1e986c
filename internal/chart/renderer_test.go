package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radcurve/internal/dose"
)

func testSamples(t *testing.T) []dose.Sample {
	t.Helper()
	samples, err := dose.SampleCurve(dose.Range{Min: 0.5, Max: 5.0, Points: 200}, dose.DefaultParameters())
	require.NoError(t, err)
	return samples
}

func TestRender_LineCount(t *testing.T) {
	samples := testSamples(t)
	applied := dose.Sample{Distance: 1.0, Dose: dose.At(1.0, dose.DefaultParameters())}

	out := Render(70, 20, samples, applied, nil)
	require.NotEmpty(t, out)
	assert.Equal(t, 20, len(strings.Split(out, "\n")))
}

func TestRender_ContainsCurveAndMarker(t *testing.T) {
	samples := testSamples(t)
	applied := dose.Sample{Distance: 2.0, Dose: dose.At(2.0, dose.DefaultParameters())}

	out := Render(70, 20, samples, applied, nil)
	assert.Contains(t, out, string(curveChar))
	assert.Contains(t, out, string(markerChar))
}

func TestRender_MarkerHiddenOutsideRange(t *testing.T) {
	samples := testSamples(t)
	applied := dose.Sample{Distance: 50.0, Dose: dose.At(50.0, dose.DefaultParameters())}

	out := Render(70, 20, samples, applied, nil)
	assert.Contains(t, out, string(curveChar))
	assert.NotContains(t, out, string(markerChar))
}

func TestRender_TooSmall(t *testing.T) {
	samples := testSamples(t)
	assert.Empty(t, Render(10, 3, samples, dose.Sample{}, nil))
	assert.Empty(t, Render(70, 20, nil, dose.Sample{}, nil))
}

func TestRenderLegend_FitsWidth(t *testing.T) {
	out := RenderLegend(60, "μSv/h")
	assert.Contains(t, out, "dose curve")
	assert.Contains(t, out, "applied distance")
}

func TestPulse_Intensity(t *testing.T) {
	p := NewPulse()

	p.Phase = 0
	assert.InDelta(t, 1.0, p.Intensity(), 1e-12)
	p.Phase = 0.5
	assert.InDelta(t, 0.0, p.Intensity(), 1e-12)
	p.Phase = 0.25
	assert.InDelta(t, 0.5, p.Intensity(), 1e-12)
	p.Phase = 0.75
	assert.InDelta(t, 0.5, p.Intensity(), 1e-12)
}

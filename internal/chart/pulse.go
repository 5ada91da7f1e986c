package chart

import (
	"math"
	"time"

	"radcurve/internal/config"
)

// Pulse manages the applied-point marker glow state.
type Pulse struct {
	Phase     float64 // Current phase in [0, 1)
	StartTime time.Time
}

// NewPulse creates a pulse starting at full intensity.
func NewPulse() *Pulse {
	return &Pulse{
		Phase:     0,
		StartTime: time.Now(),
	}
}

// Update advances the pulse phase based on elapsed time.
func (p *Pulse) Update() {
	elapsed := time.Since(p.StartTime).Seconds()
	p.Phase = math.Mod(elapsed/config.MarkerPulsePeriodSec, 1.0)
}

// Intensity returns the marker glow [0, 1]: a triangular wave that peaks at
// the start of each cycle and dips halfway through.
func (p *Pulse) Intensity() float64 {
	if p.Phase < 0.5 {
		return 1.0 - 2*p.Phase
	}
	return 2*p.Phase - 1.0
}

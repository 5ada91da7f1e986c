package dose

import (
	"radcurve/internal/config"
)

// Parameters holds the model inputs for a single evaluation. The struct is
// immutable by convention: callers build a fresh value per evaluation rather
// than sharing one across goroutines.
type Parameters struct {
	ReferenceDose float64 // Dose rate at ReferenceDistance (μSv/h)
	ReferenceDist float64 // Reference distance in meters
	Attenuation   float64 // Shielding/absorption multiplier
	Operational   float64 // Equipment/usage multiplier (e.g. exposure time)
}

// DefaultParameters returns the educational reference configuration:
// 50 μSv/h at 1 m with no attenuation and nominal operation.
func DefaultParameters() Parameters {
	return Parameters{
		ReferenceDose: config.DefaultReferenceDose,
		ReferenceDist: config.DefaultReferenceDist,
		Attenuation:   config.DefaultAttenuation,
		Operational:   config.DefaultOperational,
	}
}

// At estimates the dose rate at the given distance using the inverse-square
// law: dose = refDose * (refDist/d)^2 * attenuation * operational.
//
// Distances at or below zero are floored to config.DistanceFloor rather than
// rejected, so the result is always finite. The function is pure and safe for
// concurrent use.
func At(distance float64, p Parameters) float64 {
	if distance < config.DistanceFloor {
		distance = config.DistanceFloor
	}
	ratio := p.ReferenceDist / distance
	return p.ReferenceDose * ratio * ratio * p.Attenuation * p.Operational
}

// AtEach evaluates At for every distance in order. The result has the same
// length and ordering as the input.
func AtEach(distances []float64, p Parameters) []float64 {
	out := make([]float64, len(distances))
	for i, d := range distances {
		out[i] = At(d, p)
	}
	return out
}

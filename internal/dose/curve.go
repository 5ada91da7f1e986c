package dose

import "fmt"

// Range defines the sampling domain for the dose-vs-distance curve.
type Range struct {
	Min    float64 // First sampled distance, must be > 0
	Max    float64 // Last sampled distance, must be > Min
	Points int     // Number of samples, must be > 0
}

// Sample is one (distance, dose) pair on the curve.
type Sample struct {
	Distance float64 `json:"distance"`
	Dose     float64 `json:"dose"`
}

// InvalidRangeError reports which bound of a Range violated its precondition.
// Bad ranges are rejected outright, never swapped or clamped.
type InvalidRangeError struct {
	Field  string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid curve range: %s %s", e.Field, e.Reason)
}

// Validate checks the Range preconditions and returns an *InvalidRangeError
// naming the first violated bound.
func (r Range) Validate() error {
	if r.Min <= 0 {
		return &InvalidRangeError{Field: "min", Reason: fmt.Sprintf("must be > 0, got %g", r.Min)}
	}
	if r.Max <= r.Min {
		return &InvalidRangeError{Field: "max", Reason: fmt.Sprintf("must be > min (%g), got %g", r.Min, r.Max)}
	}
	if r.Points <= 0 {
		return &InvalidRangeError{Field: "points", Reason: fmt.Sprintf("must be > 0, got %d", r.Points)}
	}
	return nil
}

// SampleCurve evaluates the dose model over Points evenly spaced distances
// spanning [Min, Max] inclusive. Samples are ordered by increasing distance;
// the first distance equals Min and the last equals Max. The result is fully
// determined by its arguments.
func SampleCurve(r Range, p Parameters) ([]Sample, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	samples := make([]Sample, r.Points)
	if r.Points == 1 {
		samples[0] = Sample{Distance: r.Min, Dose: At(r.Min, p)}
		return samples, nil
	}

	step := (r.Max - r.Min) / float64(r.Points-1)
	for i := range samples {
		d := r.Min + float64(i)*step
		if i == r.Points-1 {
			d = r.Max // exact endpoint, no accumulated float error
		}
		samples[i] = Sample{Distance: d, Dose: At(d, p)}
	}
	return samples, nil
}

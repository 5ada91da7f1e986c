package app

import (
	"fmt"
	"math"

	"radcurve/internal/config"
)

// FieldID identifies one editable value in the parameter form.
type FieldID int

const (
	FieldDose FieldID = iota
	FieldRefDist
	FieldAttenuation
	FieldOperational
	FieldDistance
	FieldCurveMin
	FieldCurveMax
	FieldPoints

	fieldCount
)

// Field is a bounded numeric form input adjusted in fixed steps.
// Bounds apply at the UI level only; the dose model itself stays total.
type Field struct {
	Label  string
	Unit   string
	Value  float64
	Min    float64
	Max    float64 // +Inf means unbounded above
	Step   float64
	Format string
}

// Inc raises the value by one step, clamped to Max.
func (f *Field) Inc() {
	f.Value = clamp(f.Value+f.Step, f.Min, f.Max)
}

// Dec lowers the value by one step, clamped to Min.
func (f *Field) Dec() {
	f.Value = clamp(f.Value-f.Step, f.Min, f.Max)
}

// Display returns the formatted value with its unit suffix.
func (f *Field) Display() string {
	s := fmt.Sprintf(f.Format, f.Value)
	if f.Unit != "" {
		s += " " + f.Unit
	}
	return s
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// defaultFields builds the form pre-filled with the given starting values.
func defaultFields(dose, refDist, att, op, distance, curveMin, curveMax float64, points int) [fieldCount]Field {
	return [fieldCount]Field{
		FieldDose: {
			Label: "Reference dose", Unit: "μSv/h",
			Value: dose, Min: 0, Max: math.Inf(1), Step: 1, Format: "%.1f",
		},
		FieldRefDist: {
			Label: "Reference distance", Unit: "m",
			Value: refDist, Min: config.DistanceMin, Max: math.Inf(1), Step: 0.1, Format: "%.1f",
		},
		FieldAttenuation: {
			Label: "Attenuation factor",
			Value: att, Min: config.AttenuationMin, Max: config.AttenuationMax, Step: 0.01, Format: "%.2f",
		},
		FieldOperational: {
			Label: "Operational factor",
			Value: op, Min: config.OperationalMin, Max: config.OperationalMax, Step: 0.05, Format: "%.2f",
		},
		FieldDistance: {
			Label: "Distance", Unit: "m",
			Value: distance, Min: config.DistanceMin, Max: math.Inf(1), Step: config.DistanceStep, Format: "%.1f",
		},
		FieldCurveMin: {
			Label: "Curve min", Unit: "m",
			Value: curveMin, Min: config.DistanceMin, Max: math.Inf(1), Step: 0.1, Format: "%.1f",
		},
		FieldCurveMax: {
			Label: "Curve max", Unit: "m",
			Value: curveMax, Min: config.DistanceMin, Max: math.Inf(1), Step: 0.1, Format: "%.1f",
		},
		FieldPoints: {
			Label: "Curve points",
			Value: float64(points), Min: config.PointsMin, Max: config.PointsMax, Step: config.PointsStep, Format: "%.0f",
		},
	}
}

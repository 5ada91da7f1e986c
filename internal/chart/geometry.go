package chart

import "math"

// DistanceToCol maps a distance in [min, max] to a column in [0, cols-1].
func DistanceToCol(d, min, max float64, cols int) int {
	if cols <= 1 || max <= min {
		return 0
	}
	frac := (d - min) / (max - min)
	col := int(math.Round(frac * float64(cols-1)))
	if col < 0 {
		col = 0
	}
	if col > cols-1 {
		col = cols - 1
	}
	return col
}

// ColToDistance is the inverse of DistanceToCol for column centers.
func ColToDistance(col, cols int, min, max float64) float64 {
	if cols <= 1 {
		return min
	}
	return min + (max-min)*float64(col)/float64(cols-1)
}

// DoseToRow maps a dose in [0, maxDose] to a row in [0, rows-1],
// where row 0 is the top of the plot area.
func DoseToRow(dose, maxDose float64, rows int) int {
	if rows <= 1 || maxDose <= 0 {
		return rows - 1
	}
	frac := dose / maxDose
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	row := int(math.Round((1 - frac) * float64(rows-1)))
	if row < 0 {
		row = 0
	}
	if row > rows-1 {
		row = rows - 1
	}
	return row
}

// Ticks returns n evenly spaced values spanning [min, max] inclusive.
// Used for axis labels; n < 2 yields just min.
func Ticks(min, max float64, n int) []float64 {
	if n < 2 {
		return []float64{min}
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}

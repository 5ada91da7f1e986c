package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"radcurve/internal/dose"
)

var (
	colorCurve  = lipgloss.Color("#00D7FF")
	colorMarker = lipgloss.Color("#FFB000")
	colorAxis   = lipgloss.Color("#5F8787")
	colorLabel  = lipgloss.Color("#87AFAF")

	styleCurve     = lipgloss.NewStyle().Foreground(colorCurve)
	styleMarker    = lipgloss.NewStyle().Foreground(colorMarker).Bold(true)
	styleMarkerHot = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF87")).Bold(true)
	styleAxis      = lipgloss.NewStyle().Foreground(colorAxis)
	styleLabel     = lipgloss.NewStyle().Foreground(colorLabel)
	styleLegCurve  = lipgloss.NewStyle().Foreground(colorCurve)
	styleLegMarker = lipgloss.NewStyle().Foreground(colorMarker)
)

const (
	yLabelWidth = 9
	curveChar   = '*'
	markerChar  = '@'
	xTickCount  = 5
	yTickCount  = 4
)

type cellKind byte

const (
	cellBlank cellKind = iota
	cellCurve
	cellMarker
)

// Render produces the dose-vs-distance plot as a styled string of exactly
// `height` lines. The applied sample is marked only when its distance falls
// inside the sampled range. Samples must be ordered by increasing distance.
func Render(width, height int, samples []dose.Sample, applied dose.Sample, pulse *Pulse) string {
	if width < 20 || height < 6 || len(samples) == 0 {
		return ""
	}

	plotW := width - yLabelWidth - 1
	plotH := height - 2 // bottom axis line + x label row
	if plotW < 5 || plotH < 3 {
		return ""
	}

	xMin := samples[0].Distance
	xMax := samples[len(samples)-1].Distance

	yMax := 0.0
	for _, s := range samples {
		if s.Dose > yMax {
			yMax = s.Dose
		}
	}
	markerVisible := applied.Distance >= xMin && applied.Distance <= xMax
	if markerVisible && applied.Dose > yMax {
		yMax = applied.Dose
	}
	if yMax <= 0 {
		yMax = 1 // flat zero curve still gets a drawable scale
	}

	grid := buildGrid(plotW, plotH, samples, applied, markerVisible, xMin, xMax, yMax)

	yLabels := yAxisLabels(yMax, plotH)

	var sb strings.Builder
	for row := 0; row < plotH; row++ {
		label, ok := yLabels[row]
		if ok {
			sb.WriteString(styleLabel.Render(fmt.Sprintf("%*s", yLabelWidth-1, label)))
			sb.WriteString(styleAxis.Render("+"))
		} else {
			sb.WriteString(strings.Repeat(" ", yLabelWidth-1))
			sb.WriteString(styleAxis.Render("|"))
		}
		for col := 0; col < plotW; col++ {
			switch grid[row][col] {
			case cellCurve:
				sb.WriteString(styleCurve.Render(string(curveChar)))
			case cellMarker:
				sb.WriteString(renderMarker(pulse))
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(xAxisLine(plotW))
	sb.WriteByte('\n')
	sb.WriteString(xAxisLabels(plotW, xMin, xMax))

	return sb.String()
}

// buildGrid rasterizes the curve column by column, filling vertical runs
// between adjacent columns so steep sections stay connected.
func buildGrid(plotW, plotH int, samples []dose.Sample, applied dose.Sample, markerVisible bool, xMin, xMax, yMax float64) [][]cellKind {
	grid := make([][]cellKind, plotH)
	for i := range grid {
		grid[i] = make([]cellKind, plotW)
	}

	prevRow := -1
	for col := 0; col < plotW; col++ {
		d := ColToDistance(col, plotW, xMin, xMax)
		row := DoseToRow(doseNear(samples, d), yMax, plotH)
		grid[row][col] = cellCurve

		if prevRow >= 0 && absInt(row-prevRow) > 1 {
			lo, hi := row, prevRow
			if lo > hi {
				lo, hi = hi, lo
			}
			for r := lo + 1; r < hi; r++ {
				grid[r][col] = cellCurve
			}
		}
		prevRow = row
	}

	if markerVisible {
		mc := DistanceToCol(applied.Distance, xMin, xMax, plotW)
		mr := DoseToRow(applied.Dose, yMax, plotH)
		grid[mr][mc] = cellMarker
	}

	return grid
}

// doseNear returns the dose of the sample closest in distance to d.
// Samples are ordered, so a binary search would do, but curves are small
// enough that a linear scan per column is not worth optimizing away.
func doseNear(samples []dose.Sample, d float64) float64 {
	best := samples[0]
	bestDiff := absFloat(samples[0].Distance - d)
	for _, s := range samples[1:] {
		diff := absFloat(s.Distance - d)
		if diff < bestDiff {
			best = s
			bestDiff = diff
		}
	}
	return best.Dose
}

func renderMarker(pulse *Pulse) string {
	if pulse != nil && pulse.Intensity() > 0.5 {
		return styleMarkerHot.Render(string(markerChar))
	}
	return styleMarker.Render(string(markerChar))
}

// yAxisLabels picks tick rows and their formatted dose values.
func yAxisLabels(yMax float64, plotH int) map[int]string {
	labels := make(map[int]string, yTickCount)
	for _, v := range Ticks(0, yMax, yTickCount) {
		row := DoseToRow(v, yMax, plotH)
		labels[row] = fmt.Sprintf("%.1f ", v)
	}
	return labels
}

func xAxisLine(plotW int) string {
	line := make([]rune, plotW)
	for i := range line {
		line[i] = '-'
	}
	for _, col := range xTickCols(plotW) {
		line[col] = '+'
	}
	return strings.Repeat(" ", yLabelWidth-1) + styleAxis.Render("+"+string(line))
}

func xAxisLabels(plotW int, xMin, xMax float64) string {
	raw := make([]byte, plotW+1)
	for i := range raw {
		raw[i] = ' '
	}
	ticks := Ticks(xMin, xMax, xTickCount)
	for i, col := range xTickCols(plotW) {
		label := fmt.Sprintf("%.1f", ticks[i])
		start := col + 1 - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > len(raw) {
			start = len(raw) - len(label)
		}
		copy(raw[start:], label)
	}
	return strings.Repeat(" ", yLabelWidth-1) + styleLabel.Render(string(raw))
}

func xTickCols(plotW int) []int {
	cols := make([]int, xTickCount)
	for i := range cols {
		cols[i] = i * (plotW - 1) / (xTickCount - 1)
	}
	return cols
}

// RenderLegend produces the legend line shown under the plot.
func RenderLegend(width int, unit string) string {
	legend := styleLegCurve.Render(string(curveChar)+" dose curve") +
		"   " +
		styleLegMarker.Render(string(markerChar)+" applied distance") +
		"   " +
		styleLabel.Render("("+unit+")")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func absFloat(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}

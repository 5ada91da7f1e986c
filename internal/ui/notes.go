package ui

import "strings"

var noteLines = []string{
	"",
	"  Model:  D(d) = D(ref) * (r0/d)^2 * attenuation * operational",
	"",
	"  - Educational use only. The calculation is an approximation for",
	"    visualizing trends; it does not replace measurements with real",
	"    instrumentation (dosimeters, ionization chambers).",
	"  - Radiation in angiography depends on many factors: kVp, mA,",
	"    filtration, frame rate, collimation, patient, projection,",
	"    equipment.",
	"  - Follow local regulation and your institution's Diagnostic",
	"    Reference Levels (DRLs).",
	"",
	"  Tip: record real readings (μSv/h) at several distances with your",
	"  medical physics service and compare against this curve to tune",
	"  the operational/attenuation factors.",
	"",
	"  Press N to return.",
}

// RenderNotes renders the full-width educational notes overlay.
func RenderNotes(width, height int) string {
	innerH := height - 2

	lines := make([]string, 0, innerH)
	lines = append(lines, StylePanelTitle.Render("NOTES"))
	for _, l := range noteLines {
		lines = append(lines, StyleNotes.Render(l))
	}

	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

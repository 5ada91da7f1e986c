package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with the headline metric:
// the estimated dose rate at the applied distance.
func RenderStatusBar(width int, appliedDistance, appliedDose float64, points int) string {
	metric := StyleMetric.Render(fmt.Sprintf("%.2f μSv/h", appliedDose))
	info := fmt.Sprintf(" at %.2f m  Curve points: %d", appliedDistance, points)

	content := metric + StyleStatusBar.Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}

package ui

// RenderChartPanel wraps the plot content with a titled border. The chart
// itself is rendered externally to avoid an import cycle with the chart
// package.
func RenderChartPanel(width, height int, chartContent, legend string) string {
	content := StylePanelTitle.Render("DOSE vs DISTANCE") + "\n" + chartContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the parameter form and chart panel horizontally,
// with the menu bar on top and the status bar on the bottom. Either panel
// may be empty (the notes overlay replaces the right panel).
func ComposeLayout(menuBar, leftPanel, rightPanel, statusBar string) string {
	middle := leftPanel
	if rightPanel != "" {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"radcurve/internal/config"
)

// RenderMenuBar renders the top menu bar with key hints.
func RenderMenuBar(width int) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Tab", " field"},
		{"←/→", " adjust"},
		{"Enter", " apply"},
		{"N", "otes"},
		{"R", "eset"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	left := StyleMenuKey.Render(title) + menu
	right := StyleMenuLabel.Render("educational use only") + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

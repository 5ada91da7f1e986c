package ui

import "github.com/charmbracelet/lipgloss"

// Clinical teal/amber palette
var (
	ColorAccent  = lipgloss.Color("#00D7FF")
	ColorAmber   = lipgloss.Color("#FFB000")
	ColorTeal    = lipgloss.Color("#5FAFAF")
	ColorMidTeal = lipgloss.Color("#5F8787")
	ColorDimTeal = lipgloss.Color("#3A5A5A")
	ColorError   = lipgloss.Color("#FF5F5F")
	ColorBarBg   = lipgloss.Color("#10302F")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorTeal)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorTeal).
			Padding(0, 1)

	StyleMetric = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMidTeal)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleGroupHeader = lipgloss.NewStyle().
				Foreground(ColorMidTeal).
				Bold(true)

	StyleFieldLabel = lipgloss.NewStyle().
			Foreground(ColorTeal)

	StyleFieldValue = lipgloss.NewStyle().
			Foreground(ColorAccent)

	StyleFieldFocus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorAccent).
			Bold(true)

	StyleValidation = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimTeal)

	StyleNotes = lipgloss.NewStyle().
			Foreground(ColorTeal)
)

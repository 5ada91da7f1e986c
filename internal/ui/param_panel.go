package ui

import (
	"fmt"
	"strings"
)

// ParamRow is one rendered line of the parameter form.
type ParamRow struct {
	Group   string // Non-empty starts a new section
	Label   string
	Value   string
	Focused bool
}

// RenderParamPanel renders the parameter form with the focused row
// highlighted and an optional validation message under the form.
func RenderParamPanel(width, height int, rows []ParamRow, validation string) string {
	innerW := width - 4
	if innerW < 16 {
		innerW = 16
	}
	innerH := height - 2

	lines := make([]string, 0, innerH)
	lines = append(lines, StylePanelTitle.Render("PARAMETERS"))

	for _, row := range rows {
		if row.Group != "" {
			lines = append(lines, "")
			lines = append(lines, StyleGroupHeader.Render(" "+row.Group))
		}

		gap := innerW - len(row.Label) - len(row.Value) - 4
		if gap < 1 {
			gap = 1
		}
		raw := fmt.Sprintf("  %s%s%s", row.Label, strings.Repeat(" ", gap), row.Value)

		if row.Focused {
			lines = append(lines, StyleFieldFocus.Render(raw))
		} else {
			lines = append(lines,
				"  "+StyleFieldLabel.Render(row.Label)+
					strings.Repeat(" ", gap)+
					StyleFieldValue.Render(row.Value))
		}
	}

	if validation != "" {
		lines = append(lines, "")
		lines = append(lines, StyleValidation.Render("  ! "+wrapTo(validation, innerW-4)))
	}

	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func wrapTo(s string, w int) string {
	if w < 10 || len(s) <= w {
		return s
	}
	return s[:w-3] + "..."
}

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"radcurve/internal/chart"
	"radcurve/internal/config"
	"radcurve/internal/dose"
	"radcurve/internal/ui"
)

// Model is the root Bubble Tea model for the dose calculator. Bubble Tea
// copies models by value, so the pulse is a pointer shared by all copies.
type Model struct {
	width  int
	height int

	focus  FieldID
	fields [fieldCount]Field

	// appliedDistance is the only session state: it changes exclusively on
	// an explicit apply action and survives every other re-render.
	appliedDistance float64

	samples  []dose.Sample
	rangeErr string

	showNotes bool

	pulse *chart.Pulse
}

// New creates a Model seeded with the given starting values (normally the
// CLI flag values).
func New(params dose.Parameters, curve dose.Range, distance float64) Model {
	m := Model{
		fields: defaultFields(
			params.ReferenceDose, params.ReferenceDist,
			params.Attenuation, params.Operational,
			distance, curve.Min, curve.Max, curve.Points,
		),
		appliedDistance: distance,
		pulse:           chart.NewPulse(),
	}
	m.resample()
	return m
}

// Params assembles the current model parameters from the form.
func (m Model) Params() dose.Parameters {
	return dose.Parameters{
		ReferenceDose: m.fields[FieldDose].Value,
		ReferenceDist: m.fields[FieldRefDist].Value,
		Attenuation:   m.fields[FieldAttenuation].Value,
		Operational:   m.fields[FieldOperational].Value,
	}
}

// CurveRange assembles the current curve range from the form.
func (m Model) CurveRange() dose.Range {
	return dose.Range{
		Min:    m.fields[FieldCurveMin].Value,
		Max:    m.fields[FieldCurveMax].Value,
		Points: int(m.fields[FieldPoints].Value),
	}
}

// AppliedDistance returns the current session-persisted evaluation distance.
func (m Model) AppliedDistance() float64 {
	return m.appliedDistance
}

// AppliedDose returns the dose at the applied distance under the current
// parameters, recomputed on every render.
func (m Model) AppliedDose() float64 {
	return dose.At(m.appliedDistance, m.Params())
}

// resample recomputes the curve. On an invalid range the previous curve is
// kept on screen and the error is surfaced next to the range fields.
func (m *Model) resample() {
	samples, err := dose.SampleCurve(m.CurveRange(), m.Params())
	if err != nil {
		m.rangeErr = err.Error()
		return
	}
	m.rangeErr = ""
	m.samples = samples
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.pulse.Update()
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "n", "N":
		m.showNotes = !m.showNotes

	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount

	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case "right", "+", "=":
		m.fields[m.focus].Inc()
		m.resample()

	case "left", "-":
		m.fields[m.focus].Dec()
		m.resample()

	case "enter", "a", "A":
		// The explicit apply action: the only way the evaluation
		// distance changes.
		m.appliedDistance = m.fields[FieldDistance].Value

	case "r", "R":
		w, h := m.width, m.height
		m = New(dose.DefaultParameters(),
			dose.Range{Min: config.DefaultCurveMin, Max: config.DefaultCurveMax, Points: config.DefaultPoints},
			config.DefaultDistance)
		m.width, m.height = w, h
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing radcurve..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 6 {
		bodyH = 6
	}

	menuBar := ui.RenderMenuBar(m.width)

	if m.showNotes {
		notes := ui.RenderNotes(m.width, bodyH)
		statusBar := m.statusBar()
		return ui.ComposeLayout(menuBar, notes, "", statusBar)
	}

	paramW := 36
	if paramW > m.width/2 {
		paramW = m.width / 2
	}
	chartW := m.width - paramW

	paramPanel := ui.RenderParamPanel(paramW, bodyH, m.paramRows(), m.rangeErr)

	innerW := chartW - 4
	innerH := bodyH - 5 // border, title, legend
	if innerW < 20 {
		innerW = 20
	}
	if innerH < 6 {
		innerH = 6
	}
	applied := dose.Sample{Distance: m.appliedDistance, Dose: m.AppliedDose()}
	chartContent := chart.Render(innerW, innerH, m.samples, applied, m.pulse)
	legend := chart.RenderLegend(innerW, "μSv/h")
	chartPanel := ui.RenderChartPanel(chartW, bodyH, chartContent, legend)

	return ui.ComposeLayout(menuBar, paramPanel, chartPanel, m.statusBar())
}

func (m Model) statusBar() string {
	return ui.RenderStatusBar(m.width, m.appliedDistance, m.AppliedDose(), len(m.samples))
}

func (m Model) paramRows() []ui.ParamRow {
	groups := [fieldCount]string{
		FieldDose:        "MODEL",
		FieldRefDist:     "",
		FieldAttenuation: "",
		FieldOperational: "",
		FieldDistance:    "EVALUATION",
		FieldCurveMin:    "CURVE",
		FieldCurveMax:    "",
		FieldPoints:      "",
	}

	rows := make([]ui.ParamRow, 0, int(fieldCount))
	for id := FieldID(0); id < fieldCount; id++ {
		f := m.fields[id]
		rows = append(rows, ui.ParamRow{
			Group:   groups[id],
			Label:   f.Label,
			Value:   f.Display(),
			Focused: id == m.focus,
		})
	}
	return rows
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scicalc/calculus"
	"scicalc/engine"
	"scicalc/model"
)

type mode int

const (
	modeCalc mode = iota
	modeIntegral
	modeDerivative
	modeHistory
)

type Model struct {
	width  int
	height int
	mode   mode

	exprInput textinput.Model
	history   *model.History
	last      *model.Entry // most recent outcome, shown on the active screen
	lastNote  string       // secondary line (error estimate, symbolic form)

	integralForm calcForm
	derivForm    calcForm

	histCursor int
	histOffset int

	quitting bool
}

func NewModel() Model {
	ei := textinput.New()
	ei.Placeholder = "sin(pi/2) + 2^10"
	ei.CharLimit = 200
	ei.Focus()

	return Model{
		exprInput:    ei,
		history:      &model.History{},
		integralForm: newIntegralForm(),
		derivForm:    newDerivativeForm(),
		width:        100,
		height:       30,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeCalc:
			return m.updateCalc(msg)
		case modeIntegral:
			return m.updateIntegral(msg)
		case modeDerivative:
			return m.updateDerivative(msg)
		case modeHistory:
			return m.updateHistory(msg)
		}
	}
	return m, nil
}

func (m Model) updateCalc(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		return m.computeExpression(), nil

	case "f2":
		m.mode = modeIntegral
		m.last = nil
		m.lastNote = ""
		return m, nil

	case "f3":
		m.mode = modeDerivative
		m.last = nil
		m.lastNote = ""
		return m, nil

	case "f4":
		m.mode = modeHistory
		m.histCursor = 0
		m.histOffset = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.exprInput, cmd = m.exprInput.Update(msg)
	return m, cmd
}

func (m Model) computeExpression() Model {
	raw := strings.TrimSpace(m.exprInput.Value())
	if raw == "" {
		return m
	}
	inputs := []string{raw}

	v, err := engine.Eval(raw)
	var entry model.Entry
	if err != nil {
		entry = model.NewFailure(model.OpEval, inputs, err)
	} else {
		entry = model.NewResult(model.OpEval, inputs, engine.Format(v))
		// seed the next expression with the result, like a desk calculator
		m.exprInput.SetValue(entry.Result)
		m.exprInput.CursorEnd()
	}
	m.history.Add(entry)
	m.last = &entry
	m.lastNote = ""
	return m
}

func (m Model) updateIntegral(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeCalc
		m.last = nil
		m.lastNote = ""
		return m, nil
	case "tab", "down":
		m.integralForm.next()
		return m, nil
	case "shift+tab", "up":
		m.integralForm.prev()
		return m, nil
	case "enter":
		return m.computeIntegral(), nil
	}
	cmd := m.integralForm.update(msg)
	return m, cmd
}

func (m Model) updateDerivative(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeCalc
		m.last = nil
		m.lastNote = ""
		return m, nil
	case "tab", "down":
		m.derivForm.next()
		return m, nil
	case "shift+tab", "up":
		m.derivForm.prev()
		return m, nil
	case "enter":
		return m.computeDerivative(), nil
	}
	cmd := m.derivForm.update(msg)
	return m, cmd
}

func (m Model) computeIntegral() Model {
	vals := m.integralForm.values() // expr, variable, lower, upper
	m.lastNote = ""

	lower, upper, err := parseBounds(vals[2], vals[3])
	if err != nil {
		return m.record(model.NewFailure(model.OpIntegral, vals, err))
	}
	res, err := calculus.Integrate(vals[0], vals[1], lower, upper)
	if err != nil {
		return m.record(model.NewFailure(model.OpIntegral, vals, err))
	}
	m = m.record(model.NewResult(model.OpIntegral, vals, engine.Format(res.Value)))
	m.lastNote = fmt.Sprintf("estimated error ≤ %.2g", res.ErrorEstimate)
	return m
}

func (m Model) computeDerivative() Model {
	vals := m.derivForm.values() // expr, variable, point
	m.lastNote = ""

	point, err := strconv.ParseFloat(vals[2], 64)
	if err != nil {
		return m.record(model.NewFailure(model.OpDerivative, vals, fmt.Errorf("invalid point %q", vals[2])))
	}
	res, err := calculus.Differentiate(vals[0], vals[1], point)
	if err != nil {
		return m.record(model.NewFailure(model.OpDerivative, vals, err))
	}
	m = m.record(model.NewResult(model.OpDerivative, vals, engine.Format(res.Value)))
	if res.Symbolic != "" {
		m.lastNote = fmt.Sprintf("d/d%s = %s", vals[1], res.Symbolic)
	}
	return m
}

func (m Model) record(e model.Entry) Model {
	m.history.Add(e)
	m.last = &e
	return m
}

func parseBounds(lo, hi string) (float64, float64, error) {
	lower, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid lower bound %q", lo)
	}
	upper, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid upper bound %q", hi)
	}
	return lower, upper, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "f4":
		m.mode = modeCalc
		return m, nil

	case "up", "k":
		if m.histCursor > 0 {
			m.histCursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.histCursor < m.history.Len()-1 {
			m.histCursor++
			m.clampOffset()
		}

	case "home", "g":
		m.histCursor = 0
		m.clampOffset()

	case "end", "G":
		m.histCursor = max(0, m.history.Len()-1)
		m.clampOffset()

	case "c":
		m.history.Clear()
		m.histCursor = 0
		m.histOffset = 0
		m.last = nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeIntegral:
		return m.integralForm.view(m.width, m.height, m.outcomeLine(model.OpIntegral), m.lastNote)
	case modeDerivative:
		return m.derivForm.view(m.width, m.height, m.outcomeLine(model.OpDerivative), m.lastNote)
	case modeHistory:
		return m.viewHistory()
	default:
		return m.viewCalc()
	}
}

// outcomeLine renders the last entry if it belongs to the given operation.
func (m Model) outcomeLine(op model.Operation) string {
	if m.last == nil || m.last.Op != op {
		return ""
	}
	if m.last.Failed() {
		return errorStyle.Render("✗ " + m.last.Err)
	}
	return resultStyle.Render("= " + m.last.Result)
}

func (m Model) viewCalc() string {
	var b strings.Builder

	title := titleStyle.Render("SciCalc")
	count := dimStyle.Render(fmt.Sprintf("  %d calculations", m.history.Len()))
	b.WriteString(title + count + "\n\n")

	// display box: last outcome, or a resting zero
	display := "0"
	if m.last != nil {
		if m.last.Failed() {
			display = errorStyle.Render(m.last.Err)
		} else {
			display = resultStyle.Render(m.last.Result)
		}
	}
	b.WriteString(displayStyle.Width(max(40, m.width-4)).Render(display) + "\n\n")

	b.WriteString(statusBarStyle.Render("f(x) =") + " " + m.exprInput.View() + "\n\n")

	// tail of the history, newest last
	entries := m.history.Entries()
	start := max(0, len(entries)-5)
	for _, e := range entries[start:] {
		b.WriteString(dimStyle.Render("  "+e.String()) + "\n")
	}
	if len(entries) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  Enter: compute  F2: integral  F3: derivative  F4: history  Esc: quit"))
	b.WriteString("\n" + helpStyle.Render("  functions: sin cos tan asin acos atan sinh cosh tanh log ln sqrt exp abs factorial pow  constants: pi e"))
	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder

	title := titleStyle.Render("History")
	count := dimStyle.Render(fmt.Sprintf("  %d entries", m.history.Len()))
	b.WriteString(title + count + "\n")
	b.WriteString(headerStyle.Render(pad("#", 5)+pad("Time", 10)+"Calculation") + "\n")

	entries := m.history.Entries()
	visible := m.visibleRows()
	end := m.histOffset + visible
	if end > len(entries) {
		end = len(entries)
	}

	// newest first: row i shows entry len-1-i
	for i := m.histOffset; i < end; i++ {
		e := entries[len(entries)-1-i]
		line := pad(fmt.Sprintf("%d", len(entries)-i), 5) +
			pad(e.Time.Format("15:04:05"), 10) +
			e.String()
		if i == m.histCursor {
			b.WriteString(selectedStyle.Render(line))
			b.WriteString("\n")
		} else if e.Failed() {
			b.WriteString(" " + errorStyle.Render(line) + "\n")
		} else {
			b.WriteString(" " + line + "\n")
		}
	}
	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("  no calculations yet") + "\n")
	}

	rendered := end - m.histOffset
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  c: clear history  Esc: back"))
	return b.String()
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func (m Model) visibleRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.histCursor < m.histOffset {
		m.histOffset = m.histCursor
	}
	if m.histCursor >= m.histOffset+visible {
		m.histOffset = m.histCursor - visible + 1
	}
	if m.histOffset < 0 {
		m.histOffset = 0
	}
}

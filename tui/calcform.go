package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type calcField struct {
	label string
	input textinput.Model
}

// calcForm is a vertical stack of labeled text fields with focus cycling,
// used by both the integral and derivative screens.
type calcForm struct {
	title  string
	fields []calcField
	focus  int
}

func newField(label, placeholder, value string, charLimit int) calcField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.SetValue(value)
	return calcField{label: label, input: in}
}

func newIntegralForm() calcForm {
	f := calcForm{
		title: "∫ Definite Integral",
		fields: []calcField{
			newField("f(x)", "x^2", "x^2", 200),
			newField("Variable", "x", "x", 8),
			newField("Lower", "0", "0", 32),
			newField("Upper", "1", "1", 32),
		},
	}
	f.focusCurrent()
	return f
}

func newDerivativeForm() calcForm {
	f := calcForm{
		title: "d/dx Derivative",
		fields: []calcField{
			newField("f(x)", "sin(x)", "sin(x)", 200),
			newField("Variable", "x", "x", 8),
			newField("Point", "0", "0", 32),
		},
	}
	f.focusCurrent()
	return f
}

func (f *calcForm) focusCurrent() {
	f.fields[f.focus].input.Focus()
	f.fields[f.focus].input.CursorEnd()
}

func (f *calcForm) blurCurrent() {
	f.fields[f.focus].input.Blur()
}

func (f *calcForm) next() {
	f.blurCurrent()
	f.focus = (f.focus + 1) % len(f.fields)
	f.focusCurrent()
}

func (f *calcForm) prev() {
	f.blurCurrent()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.focusCurrent()
}

func (f *calcForm) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *calcForm) values() []string {
	out := make([]string, len(f.fields))
	for i, fl := range f.fields {
		out[i] = strings.TrimSpace(fl.input.Value())
	}
	return out
}

// view renders the form in a centered box. outcome and note show the result
// (or error) of the last submission of this form.
func (f *calcForm) view(width, height int, outcome, note string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(1, 2).
		Width(58)

	titleStr := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Render(f.title)

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")
	for i, fl := range f.fields {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s", formLabel(fl.label, i == f.focus), fl.input.View()))
	}
	if outcome != "" {
		b.WriteString("\n\n" + outcome)
	}
	if note != "" {
		b.WriteString("\n" + dimStyle.Render(note))
	}
	b.WriteString("\n\n" + dimStyle.Render("Enter: compute  Esc: back  Tab: next field"))

	box := boxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func formLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().Width(9)
	if focused {
		style = style.Bold(true).Foreground(lipgloss.Color("39"))
	} else {
		style = style.Foreground(lipgloss.Color("252"))
	}
	return style.Render(label + ":")
}

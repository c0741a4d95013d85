package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/rational-ffi/export"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	exprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLimit = 10

type historyEntry struct {
	expr   string
	output string
	failed bool
}

type calcModel struct {
	lib     *export.Library
	input   textinput.Model
	history []historyEntry
}

func newCalcModel(lib *export.Library) *calcModel {
	ti := textinput.New()
	ti.Placeholder = "0.5 0.25 +"
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 60

	return &calcModel{
		lib:   lib,
		input: ti,
	}
}

func (m *calcModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			expr := m.input.Value()
			if expr != "" {
				m.push(evaluate(m.lib, expr))
				m.input.SetValue("")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *calcModel) push(e historyEntry) {
	m.history = append(m.history, e)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func evaluate(lib *export.Library, expr string) historyEntry {
	res, err := evalRPN(lib, expr)
	if err != nil {
		return historyEntry{expr: expr, output: err.Error(), failed: true}
	}
	return historyEntry{
		expr:   expr,
		output: fmt.Sprintf("%s (≈ %g)", res.Text, res.Float),
	}
}

func (m *calcModel) View() string {
	s := titleStyle.Render("ratcalc") + "\n\n"

	for _, e := range m.history {
		s += exprStyle.Render("> "+e.expr) + "\n"
		if e.failed {
			s += errorStyle.Render("  "+e.output) + "\n"
		} else {
			s += resultStyle.Render("  "+e.output) + "\n"
		}
	}
	if len(m.history) > 0 {
		s += "\n"
	}

	s += m.input.View() + "\n"
	s += helpStyle.Render(fmt.Sprintf("RPN: numbers then + - * /  •  %d live handles  •  esc quits", m.lib.Live()))
	return s
}

func runInteractive() error {
	lib := export.New()
	defer lib.Close()

	p := tea.NewProgram(newCalcModel(lib))
	_, err := p.Run()
	return err
}

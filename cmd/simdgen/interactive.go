package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	simdtestgen "github.com/wippyai/simd-testgen"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/wast"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Lines taken by the title and help around the detail viewport.
const chromeHeight = 5

type interactiveModel struct {
	blocks   map[string][]string
	filename string
	shape    lane.Shape
	ops      []simdtestgen.OpReport
	view     viewport.Model
	selected int
	state    modelState
	trunc    int
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateShowBlocks
)

func newInteractiveModel(filename string, shape lane.Shape, out *simdtestgen.Output) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		shape:    shape,
		ops:      out.Report.Ops,
		blocks:   out.Blocks,
		trunc:    out.Report.Truncated,
		view:     viewport.New(80, 20),
		state:    stateSelectOp,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-chromeHeight, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectOp {
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectOp {
				if m.selected < len(m.ops)-1 {
					m.selected++
				}
				return m, nil
			}

		case "enter":
			if m.state == stateSelectOp && len(m.ops) > 0 {
				m.showBlocks()
				return m, nil
			}
			if m.state == stateShowBlocks {
				m.state = stateSelectOp
				return m, nil
			}

		case "esc":
			m.state = stateSelectOp
			return m, nil
		}
	}

	if m.state == stateShowBlocks {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) showBlocks() {
	op := m.ops[m.selected]
	content := strings.Join(m.blocks[op.Name], "")
	if content == "" {
		content = "No tests selected for this operation."
	}
	m.view.SetContent(content)
	m.view.GotoTop()
	m.state = stateShowBlocks
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SIMD Tests"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(" ")
	b.WriteString(countStyle.Render(m.shape.String()))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		if len(m.ops) == 0 {
			b.WriteString("No operations.\n")
		}
		for i, op := range m.ops {
			line := m.formatOp(op)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if m.trunc > 0 {
			b.WriteString("\n")
			b.WriteString(warnStyle.Render(fmt.Sprintf("%d unterminated form(s) at end of input", m.trunc)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter show tests • q quit"))

	case stateShowBlocks:
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%s • ↑/↓ scroll • esc back • q quit", m.ops[m.selected].Name)))
	}

	return b.String()
}

func (m *interactiveModel) formatOp(op simdtestgen.OpReport) string {
	s := opStyle.Render(m.shape.Tag+"."+op.Name) + " " +
		countStyle.Render(fmt.Sprintf("%d found, %d selected", op.Found, op.Selected))
	if skipped := formatSkipped(op.Skipped); skipped != "" {
		s += " " + helpStyle.Render("(skipped "+skipped+")")
	}
	return s
}

func formatSkipped(skipped map[wast.SkipReason]int) string {
	reasons := make([]string, 0, len(skipped))
	for r, n := range skipped {
		reasons = append(reasons, fmt.Sprintf("%s: %d", r, n))
	}
	sort.Strings(reasons)
	return strings.Join(reasons, ", ")
}

func runInteractive(filename string, shape lane.Shape, out *simdtestgen.Output) error {
	p := tea.NewProgram(newInteractiveModel(filename, shape, out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Package tui implements the interactive solution player.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubesolve"
	"github.com/seamusw/cubesolve/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// Model steps through a recorded solution one step at a time, showing the
// cube state and the milestone reached after each step.
type Model struct {
	scramble []cubesolve.Move
	steps    []cubesolve.Step
	tracker  *cubesolve.Tracker
	idx      int
}

// NewPlayer builds a player for a scramble and its solution.
func NewPlayer(scramble []cubesolve.Move, sol *cubesolve.Solution) Model {
	cube := cubesolve.NewCube()
	cube.ApplyMoves(scramble)
	return Model{
		scramble: scramble,
		steps:    sol.Steps,
		tracker:  cubesolve.NewTrackerFrom(cube),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "n", "right":
			if m.idx < len(m.steps) {
				m.tracker.ApplyMoves(m.steps[m.idx].Moves)
				m.idx++
			}
		case "r":
			cube := cubesolve.NewCube()
			cube.ApplyMoves(m.scramble)
			m.tracker = cubesolve.NewTrackerFrom(cube)
			m.idx = 0
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesolve tutor"))
	b.WriteString("\n\n")
	b.WriteString(render.Net(m.tracker.Cube(), true))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("step %d/%d | %s",
		m.idx, len(m.steps), m.tracker.CurrentMilestone().DisplayName())))
	b.WriteString("\n")

	if m.idx < len(m.steps) {
		b.WriteString("next: ")
		b.WriteString(render.Step(m.steps[m.idx]))
		b.WriteString("\n")
	} else if m.tracker.IsSolved() {
		b.WriteString(doneStyle.Render("Solved!"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render("space/n: next step  r: restart  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the player in the alternate screen.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

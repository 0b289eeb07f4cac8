// Package render draws cube states and solver output for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubesolve"
)

// colorStyles maps each sticker color to a terminal style.
var colorStyles = map[cubesolve.Color]lipgloss.Style{
	cubesolve.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	cubesolve.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	cubesolve.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	cubesolve.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	cubesolve.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	cubesolve.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var (
	phaseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	moveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

func sticker(c cubesolve.Color, colored bool) string {
	if !colored {
		return c.String()
	}
	return colorStyles[c].Render("■")
}

// Net returns the unfolded cube net: U on top, then L F R B, then D.
// With colored set, stickers render as colored blocks instead of letters.
func Net(c *cubesolve.Cube, colored bool) string {
	var b strings.Builder

	writeRow := func(grid [3][3]cubesolve.Color, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(grid[row][col], colored))
			b.WriteString(" ")
		}
	}

	up := c.FaceColors(cubesolve.FaceU)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(up, row)
		b.WriteString("\n")
	}

	var sides [4][3][3]cubesolve.Color
	for i, f := range []cubesolve.Face{cubesolve.FaceL, cubesolve.FaceF, cubesolve.FaceR, cubesolve.FaceB} {
		sides[i] = c.FaceColors(f)
	}
	for row := 0; row < 3; row++ {
		for i := range sides {
			writeRow(sides[i], row)
		}
		b.WriteString("\n")
	}

	down := c.FaceColors(cubesolve.FaceD)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(down, row)
		b.WriteString("\n")
	}

	return b.String()
}

// Step formats one solver step as a single line.
func Step(step cubesolve.Step) string {
	return phaseStyle.Render("["+step.Phase.String()+"]") + " " +
		step.Description + ": " +
		moveStyle.Render(cubesolve.FormatMoves(step.Moves))
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBorder = lipgloss.ANSIColor(8)  // bright black (dark gray)
	colorTitle  = lipgloss.ANSIColor(10) // bright green
	colorAccent = lipgloss.ANSIColor(11) // bright yellow
	colorRecord = lipgloss.ANSIColor(9)  // bright red
	colorDim    = lipgloss.ANSIColor(8)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true)

	padStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	cursorPadStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	firedPadStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true)

	recordStyle = lipgloss.NewStyle().
			Foreground(colorRecord).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// View renders the pad grid with a speed label per row and a status line.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("PADTAPE"))
	b.WriteString(dimStyle.Render("  " + filepath.Base(m.file)))
	b.WriteString("\n\n")

	for row := 0; row < gridRows; row++ {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%dx ", speedForRow(row))))
		for col := 0; col < gridCols; col++ {
			cell := " ·· "
			style := padStyle
			switch {
			case col == m.col && row == m.row:
				cell = "[··]"
				style = cursorPadStyle
			case col == m.lastCol && row == m.lastRow:
				cell = " ▶▶ "
				style = firedPadStyle
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("arrows move · space play pad · r record · q quit"))

	return frameStyle.Render(b.String())
}

func (m model) renderStatus() string {
	if m.recording {
		return recordStyle.Render("● REC") +
			dimStyle.Render("  capturing render input")
	}

	status := fmt.Sprintf("%d frames captured", m.frames)
	if m.lastCol >= 0 {
		status += fmt.Sprintf(" · region %d at %dx", m.lastCol, speedForRow(m.lastRow))
	}
	return dimStyle.Render(status)
}

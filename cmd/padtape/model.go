// SPDX-License-Identifier: EPL-2.0

package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/padtape/engine"
)

// Pad grid geometry: 8 region columns by 4 speed rows, mirroring the touch
// surface quantization.
const (
	gridCols = 8
	gridRows = 4
)

// model is the Bubbletea model for the pad grid.
type model struct {
	e      *engine.Engine
	file   string
	frames int

	col, row int // pad cursor
	lastCol  int // last fired pad, -1 before the first touch
	lastRow  int

	recording bool
	quitting  bool
}

func newModel(e *engine.Engine, file string, frames int) model {
	return model{
		e:       e,
		file:    file,
		frames:  frames,
		row:     gridRows - 1, // bottom row, 1x speed
		lastCol: -1,
		lastRow: -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// Update handles key presses; the speaker pulls audio independently.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < gridRows-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < gridCols-1 {
			m.col++
		}

	case " ", "enter":
		m.fire()

	case "r":
		m.armRecord()
	}

	return m, nil
}

// fire touches the engine at the center of the selected pad. A pad press
// always returns the engine to play mode first.
func (m *model) fire() {
	m.e.SetParameter(engine.ParamDepth, 0)
	m.recording = false

	x, y := cellCenter(m.col, m.row)
	m.e.Touch(0, engine.TouchBegan, x, y)
	m.lastCol, m.lastRow = m.col, m.row
}

// armRecord rewinds the capture cursor and records whatever the render input
// carries from the next block on.
func (m *model) armRecord() {
	m.e.SetParameter(engine.ParamDepth, -1000)
	m.e.Touch(0, engine.TouchBegan, 0, 0)
	m.recording = true
	m.lastCol, m.lastRow = -1, -1
}

// cellCenter maps a grid cell to the touch coordinate at its center. Row 0
// is drawn at the top and holds the fastest speed, so the vertical axis is
// flipped.
func cellCenter(col, row int) (x, y uint32) {
	x = uint32(col)*128 + 64
	y = uint32(gridRows-1-row)*256 + 128
	return x, y
}

// speedForRow is the playback speed multiplier a pad row selects.
func speedForRow(row int) int {
	return gridRows - row
}

package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

// canvasRows is the number of terminal rows the canvas occupies; one row
// above for the frame bar and one below for the status line.
func (m *model) canvasRows() int {
	return max(m.height-2, 1)
}

func (m *model) canvasCols() int {
	return max(m.width, 1)
}

// canvasPoint maps a terminal cell to the center of its area on the frame.
func (m *model) canvasPoint(x, y int) Point {
	size := m.ed.size
	cols, rows := m.canvasCols(), m.canvasRows()
	x = min(max(x, 0), cols-1)
	y = min(max(y-1, 0), rows-1)
	return Point{
		X: (float64(x) + 0.5) * size.Width / float64(cols),
		Y: (float64(y) + 0.5) * size.Height / float64(rows),
	}
}

func (m *model) frameSizeFor(width, height int) Size {
	rows := max(height-2, 1)
	return Size{
		Width:  float64(max(width, 1) * m.config.CellWidth),
		Height: float64(rows * m.config.CellHeight),
	}
}

// currentTool builds a tool of the selected kind with the current settings.
func (m *model) currentTool() *DrawingTool {
	c := m.colors[m.colorIndex%len(m.colors)]
	switch m.toolKind {
	case ToolEraser:
		return NewEraserTool(m.config.EraserWidth)
	case ToolEllipse:
		return NewEllipseTool(c, m.strokeWidth)
	case ToolRectangle:
		return NewRectangleTool(c, m.strokeWidth)
	}
	return NewPencilTool(c, m.strokeWidth)
}

func (m *model) selectTool(kind ToolKind) {
	m.toolKind = kind
	m.applyTool()
}

func (m *model) applyTool() {
	if m.ed != nil {
		m.ed.surface.SetTool(m.currentTool())
	}
}

func (m *model) cycleColor(step int) {
	n := len(m.colors)
	m.colorIndex = ((m.colorIndex+step)%n + n) % n
	m.applyTool()
}

func (m *model) adjustWidth(delta float64) {
	m.strokeWidth = min(max(m.strokeWidth+delta, minStrokeWidth), maxStrokeWidth)
	m.applyTool()
}

// parseBounded reads a decimal integer in [lo, hi].
func parseBounded(text string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", text)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("must be between %d and %d", lo, hi)
	}
	return n, nil
}

// shareExport puts the exported file path on the clipboard.
func shareExport(path string) bool {
	if err := clipboard.WriteAll(path); err != nil {
		log.Printf("clipboard: %v", err)
		return false
	}
	return true
}

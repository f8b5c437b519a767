package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#263238")).Foreground(lipgloss.Color("#eceff1"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffca28"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#607d8b"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef5350"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#66bb6a"))
	promptStyle   = lipgloss.NewStyle().Bold(true)
)

func (m model) View() string {
	if m.ed == nil {
		return "Starting..."
	}
	if m.help {
		return m.helpView()
	}
	var b strings.Builder
	b.WriteString(m.frameBar())
	b.WriteString("\n")
	b.WriteString(renderCells(m.canvasImage(), m.canvasCols(), m.canvasRows()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// canvasImage is the playback frame while playing, the editing surface
// otherwise.
func (m model) canvasImage() image.Image {
	if f, ok := m.player.CurrentFrame(); ok {
		return renderFrame(f, color.White)
	}
	c := NewCanvas(m.ed.size)
	m.ed.surface.Render(c)
	return c.Flatten(color.White)
}

// renderCells draws img with one half-block per terminal cell, the upper
// half in the foreground color and the lower half in the background color.
func renderCells(img image.Image, cols, rows int) string {
	small := scaleImage(img, cols, rows*2)
	styles := map[[2]color.RGBA]lipgloss.Style{}
	style := func(top, bottom color.RGBA) lipgloss.Style {
		key := [2]color.RGBA{top, bottom}
		st, ok := styles[key]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexOf(top))).
				Background(lipgloss.Color(hexOf(bottom)))
			styles[key] = st
		}
		return st
	}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		run := 0
		var runTop, runBottom color.RGBA
		for x := 0; x < cols; x++ {
			top := opaque(small.RGBAAt(x, 2*y))
			bottom := opaque(small.RGBAAt(x, 2*y+1))
			if run > 0 && (top != runTop || bottom != runBottom) {
				b.WriteString(style(runTop, runBottom).Render(strings.Repeat("▀", run)))
				run = 0
			}
			runTop, runBottom = top, bottom
			run++
		}
		if run > 0 {
			b.WriteString(style(runTop, runBottom).Render(strings.Repeat("▀", run)))
		}
	}
	return b.String()
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

func (m model) frameBar() string {
	tl := m.ed.timeline
	parts := []string{
		fmt.Sprintf(" frame %d/%d", tl.ActiveIndex()+1, tl.Len()),
		fmt.Sprintf("%d fps", tl.FPS()),
		m.toolLabel(),
		enabled("undo", m.ed.canUndo),
		enabled("redo", m.ed.canRedo),
		enabled("delete", m.ed.canDelete && !tl.Locked()),
	}
	bar := strings.Join(parts, " │ ")
	return barStyle.Width(max(m.width, 1)).Render(bar)
}

func (m model) toolLabel() string {
	if m.toolKind == ToolEraser {
		return fmt.Sprintf("eraser w%.0f", m.config.EraserWidth)
	}
	c := m.colors[m.colorIndex%len(m.colors)]
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(c))).Render("●")
	return fmt.Sprintf("%s %s w%.0f", activeStyle.Render(m.toolKind.String()), swatch, m.strokeWidth)
}

func enabled(label string, on bool) string {
	if on {
		return label
	}
	return disabledStyle.Render(label)
}

func (m model) statusLine() string {
	switch {
	case m.mode == ModeInput && m.inputKind == InputGenerateCount:
		return promptStyle.Render("Frames to generate: ") + m.inputText + "█"
	case m.mode == ModeInput && m.inputKind == InputFPS:
		return promptStyle.Render("Frames per second: ") + m.inputText + "█"
	case m.mode == ModeConfirm && m.confirmAction == ConfirmDeleteAll:
		return promptStyle.Render("Delete all frames? (y/n)")
	case m.mode == ModeConfirm && m.confirmAction == ConfirmQuit:
		return promptStyle.Render("Quit? (y/n)")
	case m.errorMessage != "":
		return errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		return successStyle.Render(m.successMessage)
	}
	status := m.modeString()
	if m.busy != BusyNone {
		status += " │ " + busyLabel(m.busy)
	}
	return status + " │ ? help"
}

func (m model) modeString() string {
	if m.mode == ModePlay {
		return fmt.Sprintf("PLAYING frame %d (space to stop)", m.player.CurrentIndex()+1)
	}
	return "DRAW"
}

func busyLabel(job BusyJob) string {
	switch job {
	case BusyGenerating:
		return "generating frames..."
	case BusyExportingGIF:
		return "exporting gif..."
	case BusyExportingPDF:
		return "exporting pdf..."
	case BusyExportingSheet:
		return "exporting sheet..."
	}
	return ""
}

func (m model) helpView() string {
	lines := []string{
		"frameflip help",
		"==============",
		"",
		"Drawing:",
		"  mouse drag       Draw with the current tool",
		"  p / e / o / r    Pencil, eraser, ellipse, rectangle",
		"  c / C            Next / previous color",
		"  [ / ]            Thinner / thicker stroke",
		"  u                Undo",
		"  U, ctrl+r        Redo",
		"",
		"Frames:",
		"  h/← l/→          Previous / next frame",
		"  0 / $            First / last frame",
		"  a                Add empty frame",
		"  d                Duplicate frame",
		"  x                Delete frame",
		"  X                Delete all frames",
		"  G                Generate spinning cube frames",
		"",
		"Playback and export:",
		"  space            Play / stop",
		"  f                Set frames per second",
		"  E                Export animated GIF",
		"  P                Export PDF flipbook",
		"  S                Export contact sheet PNG",
		"",
		"  ? / esc          Close help",
		"  q                Quit",
	}
	return strings.Join(lines, "\n")
}

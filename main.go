package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if os.Getenv("FRAMEFLIP_DEBUG") != "" {
		f, err := tea.LogToFile("frameflip.log", "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(loadConfig()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initialModel(config *Config) model {
	return model{
		mode:        ModeDraw,
		config:      config,
		player:      NewScheduler(config.RefreshRate, time.Now),
		generator:   NewCubeGenerator(time.Now().UnixNano()),
		exporter:    NewExporter(config.ExportDir()),
		colors:      config.Colors(),
		toolKind:    ToolPencil,
		strokeWidth: config.StrokeWidth,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.ed == nil {
			m.ed = newEditor(m.frameSizeFor(msg.Width, msg.Height), m.config)
			m.applyTool()
		}
		return m, nil

	case playbackTickMsg:
		cmd, _ := m.player.Tick(msg)
		return m, cmd

	case framesGeneratedMsg:
		m.busy = BusyNone
		m.ed.timeline.AppendFrames(msg.frames)
		m.successMessage = fmt.Sprintf("Generated %d frames", len(msg.frames))
		log.Printf("generated %d frames", len(msg.frames))
		return m, nil

	case exportFinishedMsg:
		m.busy = BusyNone
		if msg.err != nil {
			var exportErr *ExportError
			if errors.As(msg.err, &exportErr) {
				m.errorMessage = fmt.Sprintf("Export failed (%s): %v", exportErr.Op, exportErr.Err)
			} else {
				m.errorMessage = "Export failed: " + msg.err.Error()
			}
			log.Printf("export failed: %v", msg.err)
			return m, nil
		}
		m.lastExport = msg.path
		m.successMessage = "Saved " + msg.path
		if shareExport(msg.path) {
			m.successMessage += " (path copied)"
		}
		return m, nil

	case tea.MouseMsg:
		if m.ed == nil || m.mode != ModeDraw || m.help {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.player.Stop()
			return m, tea.Quit
		}
		if m.ed == nil {
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		switch m.mode {
		case ModePlay:
			return m.updatePlay(msg)
		case ModeInput:
			return m.updateInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateDraw(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	p := m.canvasPoint(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseLeft:
		if !m.panning {
			m.panning = true
			m.ed.surface.PanStart(p)
			return
		}
		m.ed.surface.PanContinue(p)
	case tea.MouseMotion:
		if m.panning {
			m.ed.surface.PanContinue(p)
		}
	case tea.MouseRelease:
		if m.panning {
			m.panning = false
			m.ed.surface.PanEnd(p)
		}
	}
}

func (m model) updateDraw(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if cmd, ok := m.handleFrameKey(key); ok {
		return m, cmd
	}
	switch key {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "p":
		m.selectTool(ToolPencil)
	case "e":
		m.selectTool(ToolEraser)
	case "o":
		m.selectTool(ToolEllipse)
	case "r":
		m.selectTool(ToolRectangle)
	case "c":
		m.cycleColor(1)
	case "C":
		m.cycleColor(-1)
	case "]":
		m.adjustWidth(1)
	case "[":
		m.adjustWidth(-1)
	case "u":
		m.ed.surface.Undo()
	case "U", "ctrl+r":
		m.ed.surface.Redo()
	case "G":
		if m.busy != BusyNone {
			m.errorMessage = "Busy"
			return m, nil
		}
		m.mode = ModeInput
		m.inputKind = InputGenerateCount
		m.inputText = strconv.Itoa(m.config.GenerateCount)
	case "f":
		m.mode = ModeInput
		m.inputKind = InputFPS
		m.inputText = strconv.Itoa(m.ed.timeline.FPS())
	case "E":
		return m, m.startExport(BusyExportingGIF)
	case "P":
		return m, m.startExport(BusyExportingPDF)
	case "S":
		return m, m.startExport(BusyExportingSheet)
	}
	return m, nil
}

func (m model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "space", "esc", "s":
		m.stopPlayback()
	case "q":
		m.player.Stop()
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeDraw
		m.inputText = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.inputText) > 0 {
			m.inputText = m.inputText[:len(m.inputText)-1]
		}
		return m, nil
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(m.inputText) < 4 {
				m.inputText += string(r)
			}
		}
	}
	return m, nil
}

func (m model) submitInput() (tea.Model, tea.Cmd) {
	m.mode = ModeDraw
	switch m.inputKind {
	case InputFPS:
		fps, err := parseBounded(m.inputText, 1, maxFPS)
		if err != nil {
			m.errorMessage = "FPS " + err.Error()
			return m, nil
		}
		m.ed.timeline.SetFPS(fps)
		m.successMessage = fmt.Sprintf("FPS set to %d", fps)
	case InputGenerateCount:
		count, err := parseBounded(m.inputText, 1, maxGenerateCount)
		if err != nil {
			m.errorMessage = "Frame count " + err.Error()
			return m, nil
		}
		return m, m.startGenerate(count)
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = ModeDraw
		switch m.confirmAction {
		case ConfirmDeleteAll:
			m.ed.timeline.DeleteAllFrames()
		case ConfirmQuit:
			return m, tea.Quit
		}
	case "n", "N", "esc":
		m.mode = ModeDraw
	}
	return m, nil
}

func (m *model) startGenerate(count int) tea.Cmd {
	if m.busy != BusyNone {
		return nil
	}
	m.busy = BusyGenerating
	size := m.ed.timeline.Frames()[m.ed.timeline.Len()-1].Size
	sizeGenerator(m.generator, size)
	return generateFramesCmd(m.generator, count, size)
}

func (m *model) startExport(job BusyJob) tea.Cmd {
	if m.busy != BusyNone {
		m.errorMessage = "Busy"
		return nil
	}
	frames := m.ed.timeline.Frames()
	if len(frames) == 0 {
		m.errorMessage = ErrNoFrames.Error()
		return nil
	}
	m.busy = job
	return exportCmd(job, *m.exporter, frames, frames[0].Size, m.ed.timeline.FPS())
}


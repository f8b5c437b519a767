package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Background jobs run as tea.Cmds, off the UI loop. Their single result is
// delivered back to Update as a message.

type framesGeneratedMsg struct {
	frames []Frame
}

type exportFinishedMsg struct {
	job  BusyJob
	path string
	err  error
}

// generateFramesCmd hands the generator to the job; callers must not touch
// it until framesGeneratedMsg arrives.
func generateFramesCmd(gen *CubeGenerator, count int, size Size) tea.Cmd {
	return func() tea.Msg {
		return framesGeneratedMsg{frames: gen.Generate(count, size)}
	}
}

// exportCmd runs one exporter over a private copy of the frames.
func exportCmd(job BusyJob, exp Exporter, frames []Frame, size Size, fps int) tea.Cmd {
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		switch job {
		case BusyExportingGIF:
			path, err = exp.ExportGIF(frames, size, fps)
		case BusyExportingPDF:
			path, err = exp.ExportPDF(frames, size)
		case BusyExportingSheet:
			path, err = exp.ExportSheet(frames, size)
		}
		return exportFinishedMsg{job: job, path: path, err: err}
	}
}

// sizeGenerator fits the cube to the frame.
func sizeGenerator(gen *CubeGenerator, size Size) {
	side := min(size.Width, size.Height)
	gen.CubeSize = max(side/4, 8)
	gen.Inset = gen.CubeSize
	gen.TravelSpeed = max(side/60, 1)
	gen.StrokeWidth = max(side/120, 1)
}

package main

import tea "github.com/charmbracelet/bubbletea"

// handleFrameKey runs the timeline commands bound to key. It reports false
// when key is not a timeline key.
func (m *model) handleFrameKey(key string) (tea.Cmd, bool) {
	tl := m.ed.timeline
	switch key {
	case "h", "left":
		tl.StepPrevious()
	case "l", "right":
		tl.StepNext()
	case "0", "home":
		tl.GoTo(0)
	case "$", "end":
		tl.GoTo(tl.Len() - 1)
	case "a":
		tl.AddFrame()
	case "d":
		tl.DuplicateFrame()
	case "x":
		if !tl.CanDelete() {
			m.errorMessage = "Cannot delete the only frame"
			return nil, true
		}
		tl.DeleteActiveFrame()
	case "X":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteAll
			return nil, true
		}
		tl.DeleteAllFrames()
	case " ", "space":
		return m.startPlayback(), true
	default:
		return nil, false
	}
	return nil, true
}

func (m *model) startPlayback() tea.Cmd {
	if m.busy == BusyGenerating {
		m.errorMessage = "Wait for frame generation to finish"
		return nil
	}
	if t := m.ed.surface.Tool(); t != nil {
		t.Cancel()
	}
	m.panning = false
	cmd := m.player.Start(m.ed.timeline.Frames(), m.ed.timeline.FPS())
	if cmd == nil {
		return nil
	}
	m.ed.timeline.SetLocked(true)
	m.mode = ModePlay
	return cmd
}

// stopPlayback unlocks the timeline and lands on the last frame.
func (m *model) stopPlayback() {
	m.player.Stop()
	m.ed.timeline.SetLocked(false)
	m.ed.timeline.Land()
	m.mode = ModeDraw
}

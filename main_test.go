package main

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out, cmd
}

func newTestModel(t *testing.T) model {
	t.Helper()
	config := defaultConfig()
	config.SaveDirectory = t.TempDir()
	m := initialModel(config)
	m.generator = NewCubeGenerator(1)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func drag(t *testing.T, m model) model {
	t.Helper()
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Type: tea.MouseLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 10, Type: tea.MouseMotion})
	m, _ = update(t, m, tea.MouseMsg{X: 30, Y: 12, Type: tea.MouseRelease})
	return m
}

func TestWindowSizeCreatesEditor(t *testing.T) {
	m := initialModel(defaultConfig())
	m, _ = update(t, m, keyPress("a"))
	assert.Nil(t, m.ed, "keys before the first size are ignored")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, m.ed)
	assert.Equal(t, Size{Width: 480, Height: 264}, m.ed.size)
	assert.Equal(t, 1, m.ed.timeline.Len())
	require.NotNil(t, m.ed.surface.Tool())
	assert.Equal(t, ToolPencil, m.ed.surface.Tool().Kind())

	ed := m.ed
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Same(t, ed, m.ed)
}

func TestMouseDragCommitsAndUndoes(t *testing.T) {
	m := drag(t, newTestModel(t))
	active := m.ed.timeline.Active()
	require.Len(t, active.Strokes, 1)
	assert.Equal(t, StrokeFreehand, active.Strokes[0].Kind)
	assert.Len(t, active.Strokes[0].Points, 3)
	assert.True(t, m.ed.canUndo)

	m, _ = update(t, m, keyPress("u"))
	assert.Equal(t, 0, m.ed.timeline.Active().Committed)
	assert.True(t, m.ed.canRedo)

	m, _ = update(t, m, keyPress("U"))
	assert.Equal(t, 1, m.ed.timeline.Active().Committed)
}

func TestToolKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyPress("r"))
	m = drag(t, m)
	s := m.ed.timeline.Active().Strokes[0]
	assert.Equal(t, StrokeRectangle, s.Kind)
	assert.Equal(t, m.colors[0], s.Color)

	m, _ = update(t, m, keyPress("c"))
	m, _ = update(t, m, keyPress("]"))
	m, _ = update(t, m, keyPress("p"))
	m = drag(t, m)
	s = m.ed.timeline.Active().Strokes[1]
	assert.Equal(t, m.colors[1], s.Color)
	assert.Equal(t, defaultStrokeWidth+1.0, s.Width)

	m, _ = update(t, m, keyPress("e"))
	m = drag(t, m)
	s = m.ed.timeline.Active().Strokes[2]
	assert.Equal(t, StrokeEraser, s.Kind)
	assert.Equal(t, m.config.EraserWidth, s.Width)
}

func TestPlaybackLocksAndLands(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyPress("a"))
	m, _ = update(t, m, keyPress("a"))
	m, _ = update(t, m, keyPress("0"))
	require.Equal(t, 0, m.ed.timeline.ActiveIndex())

	m, cmd := update(t, m, keyPress(" "))
	require.NotNil(t, cmd)
	assert.Equal(t, ModePlay, m.mode)
	assert.True(t, m.ed.timeline.Locked())
	assert.True(t, m.player.Running())

	m, _ = update(t, m, keyPress("a"))
	m = drag(t, m)
	assert.Equal(t, 3, m.ed.timeline.Len())
	assert.Empty(t, m.ed.timeline.Active().Strokes)

	m, _ = update(t, m, keyPress("s"))
	assert.Equal(t, ModeDraw, m.mode)
	assert.False(t, m.ed.timeline.Locked())
	assert.False(t, m.player.Running())
	assert.Equal(t, 2, m.ed.timeline.ActiveIndex())

	_, cmd = update(t, m, playbackTickMsg{generation: 1})
	assert.Nil(t, cmd, "ticks after stop are dropped")
}

func TestGenerateAppendsFrames(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyPress("G"))
	require.Equal(t, ModeInput, m.mode)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, keyPress("5"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, BusyGenerating, m.busy)

	m, _ = update(t, m, cmd())
	assert.Equal(t, BusyNone, m.busy)
	assert.Equal(t, 6, m.ed.timeline.Len())
	assert.Equal(t, 5, m.ed.timeline.ActiveIndex())
	assert.Len(t, m.ed.timeline.Active().Strokes, 12)
}

func TestSetFPS(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyPress("f"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, keyPress("12"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 12, m.ed.timeline.FPS())

	m, _ = update(t, m, keyPress("f"))
	m, _ = update(t, m, keyPress("9"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 12, m.ed.timeline.FPS(), "129 is out of range")
	assert.NotEmpty(t, m.errorMessage)
}

func TestDeleteKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyPress("x"))
	assert.NotEmpty(t, m.errorMessage)
	assert.Equal(t, 1, m.ed.timeline.Len())

	m, _ = update(t, m, keyPress("d"))
	m, _ = update(t, m, keyPress("d"))
	m, _ = update(t, m, keyPress("x"))
	assert.Equal(t, 2, m.ed.timeline.Len())

	m, _ = update(t, m, keyPress("X"))
	require.Equal(t, ModeConfirm, m.mode)
	m, _ = update(t, m, keyPress("y"))
	assert.Equal(t, ModeDraw, m.mode)
	assert.Equal(t, 1, m.ed.timeline.Len())
	assert.False(t, m.ed.canDelete)
}

func TestExportKey(t *testing.T) {
	m := drag(t, newTestModel(t))
	m, cmd := update(t, m, keyPress("E"))
	require.NotNil(t, cmd)
	assert.Equal(t, BusyExportingGIF, m.busy)

	_, again := update(t, m, keyPress("P"))
	assert.Nil(t, again, "one job at a time")

	m, _ = update(t, m, cmd())
	assert.Equal(t, BusyNone, m.busy)
	require.NotEmpty(t, m.lastExport, m.errorMessage)
	_, err := os.Stat(m.lastExport)
	assert.NoError(t, err)
}

func TestExportFailureMessage(t *testing.T) {
	m := newTestModel(t)
	m.busy = BusyExportingGIF
	m, _ = update(t, m, exportFinishedMsg{job: BusyExportingGIF, err: &ExportError{Op: "create", Path: "x", Err: os.ErrPermission}})
	assert.Equal(t, BusyNone, m.busy)
	assert.Contains(t, m.errorMessage, "create")
	assert.Empty(t, m.lastExport)
}

func TestViewRenders(t *testing.T) {
	m := drag(t, newTestModel(t))
	assert.NotEmpty(t, m.View())
	m.help = true
	assert.NotEmpty(t, m.View())
}

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `
save_directory = "~/anim"
fps = 12
ghost_alpha = 0.5
eraser_width = 8
stroke_color = "#ff0000"
palette = ["#00ff00", "#ff0000"]
confirmations = false
`)
	config, err := readConfig(path, "/home/artist")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/artist", "anim"), config.SaveDirectory)
	assert.Equal(t, 12, config.FPS)
	assert.Equal(t, 0.5, config.GhostAlpha)
	assert.Equal(t, 8.0, config.EraserWidth)
	assert.False(t, config.Confirmations)
	assert.Equal(t, defaultRefreshRate, config.RefreshRate, "unset keys keep defaults")

	colors := config.Colors()
	require.Len(t, colors, 2, "stroke color comes first and is not repeated")
	assert.Equal(t, "#ff0000", hexOf(colors[0]))
	assert.Equal(t, "#00ff00", hexOf(colors[1]))
}

func TestReadConfigInvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
fps = 500
ghost_alpha = 2.0
eraser_width = 0
stroke_width = 90
stroke_color = "blue"
generate_count = 5000
cell_width = -1
`)
	config, err := readConfig(path, "")
	require.NoError(t, err)

	d := defaultConfig()
	assert.Equal(t, d.FPS, config.FPS)
	assert.Equal(t, d.GhostAlpha, config.GhostAlpha)
	assert.Equal(t, d.EraserWidth, config.EraserWidth)
	assert.Equal(t, d.StrokeWidth, config.StrokeWidth)
	assert.Equal(t, d.StrokeColor, config.StrokeColor)
	assert.Equal(t, d.GenerateCount, config.GenerateCount)
	assert.Equal(t, d.CellWidth, config.CellWidth)
}

func TestReadConfigMissingOrBroken(t *testing.T) {
	config, err := readConfig(filepath.Join(t.TempDir(), "nope.toml"), "")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, defaultConfig(), config)

	config, err = readConfig(writeConfig(t, "fps = [oops"), "")
	assert.Error(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestExportDir(t *testing.T) {
	assert.Empty(t, defaultConfig().ExportDir())

	dir := filepath.Join(t.TempDir(), "nested", "out")
	config := defaultConfig()
	config.SaveDirectory = dir
	assert.Equal(t, dir, config.ExportDir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefaultColors(t *testing.T) {
	colors := defaultConfig().Colors()
	assert.Len(t, colors, len(defaultPalette))
	assert.Equal(t, defaultStrokeColor, hexOf(colors[0]))

	empty := &Config{StrokeColor: "bad", Palette: []string{"worse"}}
	assert.Equal(t, swatches{{A: 255}}, empty.Colors())
}

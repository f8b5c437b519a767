package main

import (
	"errors"
	"image/color"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultFPS           = 30
	defaultRefreshRate   = 60
	defaultGhostAlpha    = 0.3
	defaultEraserWidth   = 20
	defaultStrokeWidth   = 5
	defaultStrokeColor   = "#1e88e5"
	defaultGenerateCount = 60
	defaultCellWidth     = 6
	defaultCellHeight    = 12
	configFileName       = ".frameflip.toml"
)

var defaultPalette = []string{"#1e88e5", "#000000", "#e53935", "#43a047", "#fdd835", "#8e24aa"}

type Config struct {
	SaveDirectory string   `toml:"save_directory"`
	FPS           int      `toml:"fps"`
	GhostAlpha    float64  `toml:"ghost_alpha"`
	EraserWidth   float64  `toml:"eraser_width"`
	StrokeWidth   float64  `toml:"stroke_width"`
	StrokeColor   string   `toml:"stroke_color"`
	Palette       []string `toml:"palette"`
	RefreshRate   int      `toml:"refresh_rate"`
	GenerateCount int      `toml:"generate_count"`
	CellWidth     int      `toml:"cell_width"`
	CellHeight    int      `toml:"cell_height"`
	Confirmations bool     `toml:"confirmations"`
}

func defaultConfig() *Config {
	return &Config{
		FPS:           defaultFPS,
		GhostAlpha:    defaultGhostAlpha,
		EraserWidth:   defaultEraserWidth,
		StrokeWidth:   defaultStrokeWidth,
		StrokeColor:   defaultStrokeColor,
		Palette:       append([]string(nil), defaultPalette...),
		RefreshRate:   defaultRefreshRate,
		GenerateCount: defaultGenerateCount,
		CellWidth:     defaultCellWidth,
		CellHeight:    defaultCellHeight,
		Confirmations: true,
	}
}

// loadConfig reads ~/.frameflip.toml over the defaults. A missing or broken
// file leaves the defaults in place.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	config, err := readConfig(filepath.Join(homeDir, configFileName), homeDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: %v", err)
	}
	return config
}

func readConfig(path, homeDir string) (*Config, error) {
	config := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return defaultConfig(), err
	}
	config.normalize(homeDir)
	return config, nil
}

func (c *Config) normalize(homeDir string) {
	d := defaultConfig()
	if c.FPS <= 0 || c.FPS > maxFPS {
		c.FPS = d.FPS
	}
	if c.GhostAlpha < 0 || c.GhostAlpha > 1 {
		c.GhostAlpha = d.GhostAlpha
	}
	if c.EraserWidth < minStrokeWidth || c.EraserWidth > maxStrokeWidth {
		c.EraserWidth = d.EraserWidth
	}
	if c.StrokeWidth < minStrokeWidth || c.StrokeWidth > maxStrokeWidth {
		c.StrokeWidth = d.StrokeWidth
	}
	if _, err := colorful.Hex(c.StrokeColor); err != nil {
		c.StrokeColor = d.StrokeColor
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
	if c.RefreshRate <= 0 {
		c.RefreshRate = d.RefreshRate
	}
	if c.GenerateCount <= 0 || c.GenerateCount > maxGenerateCount {
		c.GenerateCount = d.GenerateCount
	}
	if c.CellWidth <= 0 {
		c.CellWidth = d.CellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = d.CellHeight
	}
	if c.SaveDirectory == "" {
		return
	}
	if strings.HasPrefix(c.SaveDirectory, "~") && homeDir != "" {
		c.SaveDirectory = filepath.Join(homeDir, strings.TrimPrefix(c.SaveDirectory, "~"))
	}
	if !filepath.IsAbs(c.SaveDirectory) {
		if absPath, err := filepath.Abs(c.SaveDirectory); err == nil {
			c.SaveDirectory = absPath
		}
	}
}

// ExportDir returns the save directory, creating it on demand. Empty means
// the process temp directory.
func (c *Config) ExportDir() string {
	if c.SaveDirectory == "" {
		return ""
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		log.Printf("config: save directory: %v", err)
		return ""
	}
	return c.SaveDirectory
}

// Colors returns the palette with the configured stroke color first.
func (c *Config) Colors() swatches {
	seen := map[string]bool{}
	var out swatches
	for _, hex := range append([]string{c.StrokeColor}, c.Palette...) {
		col, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		key := col.Hex()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, toNRGBA(col))
	}
	if len(out) == 0 {
		out = swatches{{A: 255}}
	}
	return out
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func hexOf(c color.Color) string {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return col.Hex()
}

package main

import (
	"image/color"
	"math"
)

type Point struct {
	X, Y float64
}

func (p Point) movedBy(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned box with a non-negative width and height.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// rectFromPoints normalizes two opposite corners into a Rect.
func rectFromPoints(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Frame is one page of the animation. Strokes at index Committed and later
// are redo candidates and never rendered.
type Frame struct {
	Size      Size
	Committed int
	Strokes   []Stroke
}

func newEmptyFrame(size Size) Frame {
	return Frame{Size: size}
}

// Visible returns the committed strokes.
func (f Frame) Visible() []Stroke {
	n := f.Committed
	if n < 0 {
		n = 0
	}
	if n > len(f.Strokes) {
		n = len(f.Strokes)
	}
	return f.Strokes[:n]
}

// clone copies the stroke log so the copy can be handed across owners.
func (f Frame) clone() Frame {
	strokes := make([]Stroke, len(f.Strokes))
	copy(strokes, f.Strokes)
	f.Strokes = strokes
	return f
}

// sealed returns the frame with every stroke committed.
func sealed(size Size, strokes []Stroke) Frame {
	return Frame{Size: size, Committed: len(strokes), Strokes: strokes}
}

type model struct {
	width          int
	height         int
	mode           Mode
	help           bool
	config         *Config
	ed             *editor
	player         *Scheduler
	generator      *CubeGenerator
	exporter       *Exporter
	colors         swatches
	toolKind       ToolKind
	colorIndex     int
	strokeWidth    float64
	panning        bool
	busy           BusyJob
	inputKind      InputKind
	inputText      string
	confirmAction  ConfirmAction
	lastExport     string
	errorMessage   string
	successMessage string
}

// swatches are kept as NRGBA so strokes can scale alpha directly.
type swatches []color.NRGBA

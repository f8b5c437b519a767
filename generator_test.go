package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSecondary(g *CubeGenerator, f Frame) int {
	n := 0
	for _, s := range f.Strokes {
		if s.Color == g.Secondary {
			n++
		}
	}
	return n
}

func TestGenerateSingleFrame(t *testing.T) {
	g := NewCubeGenerator(1)
	frames := g.Generate(1, Size{Width: 200, Height: 200})
	require.Len(t, frames, 1)

	f := frames[0]
	assert.Len(t, f.Strokes, 12)
	assert.Equal(t, 12, f.Committed)
	assert.Equal(t, Size{Width: 200, Height: 200}, f.Size)
	assert.Equal(t, 3, countSecondary(g, f))
	for _, s := range f.Strokes {
		assert.Equal(t, StrokeFreehand, s.Kind)
		assert.Len(t, s.Points, 2)
		assert.Equal(t, 3.0, s.Width)
	}
}

func TestGenerateFrameCount(t *testing.T) {
	g := NewCubeGenerator(2)
	for _, n := range []int{0, -4} {
		assert.Empty(t, g.Generate(n, Size{Width: 400, Height: 300}))
	}
	frames := g.Generate(120, Size{Width: 640, Height: 480})
	require.Len(t, frames, 120)
	for _, f := range frames {
		assert.Len(t, f.Strokes, 12)
		assert.Equal(t, len(f.Strokes), f.Committed)
		assert.Equal(t, 3, countSecondary(g, f))
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	size := Size{Width: 500, Height: 500}
	a := NewCubeGenerator(9).Generate(30, size)
	b := NewCubeGenerator(9).Generate(30, size)
	assert.Equal(t, a, b)
}

func TestTravelPathStaysOnInsetAndSteps(t *testing.T) {
	g := NewCubeGenerator(3)
	size := Size{Width: 640, Height: 480}
	r := g.insetRect(size)
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 440, Height: 280}, r)

	path := g.travelPath(300, size)
	require.Len(t, path, 300)
	for i, p := range path {
		assert.GreaterOrEqual(t, p.X, r.X-1e-9)
		assert.LessOrEqual(t, p.X, r.X+r.Width+1e-9)
		assert.GreaterOrEqual(t, p.Y, r.Y-1e-9)
		assert.LessOrEqual(t, p.Y, r.Y+r.Height+1e-9)
		if i > 0 {
			assert.LessOrEqual(t, path[i-1].distance(p), g.TravelSpeed+1e-9)
		}
	}
}

func TestInsetCollapsesOnSmallFrames(t *testing.T) {
	g := NewCubeGenerator(4)
	r := g.insetRect(Size{Width: 120, Height: 80})
	assert.Equal(t, Rect{X: 40, Y: 40, Width: 40, Height: 0}, r)

	path := g.travelPath(5, Size{Width: 50, Height: 50})
	for _, p := range path {
		assert.Equal(t, Point{X: 25, Y: 25}, p)
	}
}

func TestCubeSpins(t *testing.T) {
	g := NewCubeGenerator(5)
	g.TravelSpeed = 0
	frames := g.Generate(2, Size{Width: 300, Height: 300})
	require.Len(t, frames, 2)
	assert.NotEqual(t, frames[0].Strokes[0].Points, frames[1].Strokes[0].Points)

	a := frames[0].Strokes[0].Points[0]
	b := frames[0].Strokes[0].Points[1]
	assert.InDelta(t, g.CubeSize, a.distance(b), 1e-9, "bottom edge length")
}

func TestTravelPathNeverStalls(t *testing.T) {
	g := NewCubeGenerator(6)
	path := g.travelPath(400, Size{Width: 640, Height: 480})
	require.Len(t, path, 400)
	for i := 1; i < len(path); i++ {
		assert.InDelta(t, g.TravelSpeed, path[i-1].distance(path[i]), 1e-9, "step %d", i)
	}
}

package main

import "image/color"

// Stroke is an immutable drawable primitive. Freehand and eraser strokes use
// Points; ellipse and rectangle strokes use the Start/End bounding corners.
// Eraser strokes carry a fully transparent color.
type Stroke struct {
	Kind   StrokeKind
	Color  color.NRGBA
	Width  float64
	Points []Point
	Start  Point
	End    Point
}

func NewFreehandStroke(c color.NRGBA, width float64, points []Point) Stroke {
	return Stroke{Kind: StrokeFreehand, Color: c, Width: width, Points: clonePoints(points)}
}

func NewEraserStroke(width float64, points []Point) Stroke {
	return Stroke{Kind: StrokeEraser, Width: width, Points: clonePoints(points)}
}

func NewEllipseStroke(c color.NRGBA, width float64, start, end Point) Stroke {
	return Stroke{Kind: StrokeEllipse, Color: c, Width: width, Start: start, End: end}
}

func NewRectangleStroke(c color.NRGBA, width float64, start, end Point) Stroke {
	return Stroke{Kind: StrokeRectangle, Color: c, Width: width, Start: start, End: end}
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	return out
}

// Bounds returns the box the stroke geometry lives in.
func (s Stroke) Bounds() Rect {
	switch s.Kind {
	case StrokeEllipse, StrokeRectangle:
		return rectFromPoints(s.Start, s.End)
	}
	if len(s.Points) == 0 {
		return Rect{}
	}
	lo, hi := s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return rectFromPoints(lo, hi)
}

// Render draws the stroke onto t. Targets composite in replace mode.
func (s Stroke) Render(t RenderTarget) {
	switch s.Kind {
	case StrokeFreehand:
		t.StrokePath(s.Points, s.Color, s.Width)
	case StrokeEraser:
		t.StrokePath(s.Points, color.NRGBA{}, s.Width)
	case StrokeEllipse:
		t.StrokeEllipse(s.Bounds(), s.Color, s.Width)
	case StrokeRectangle:
		t.StrokeRect(s.Bounds(), s.Color, s.Width)
	}
}

// WithAlpha returns the same stroke with its color opacity scaled by a.
// Only used for ghost rendering, never stored.
func (s Stroke) WithAlpha(a float64) Stroke {
	a = min(max(a, 0), 1)
	s.Color.A = uint8(float64(s.Color.A)*a + 0.5)
	return s
}

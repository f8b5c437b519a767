package main

import "image/color"

// toolListener receives the side effects of a drawing tool.
type toolListener interface {
	toolNeedsDisplay()
	toolCreatedStroke(s Stroke)
}

// DrawingTool turns pan events into strokes. Pencil and eraser accumulate
// points; ellipse and rectangle keep a start corner and a moving end corner.
type DrawingTool struct {
	kind     ToolKind
	color    color.NRGBA
	width    float64
	active   bool
	points   []Point
	start    Point
	end      Point
	hasEnd   bool
	listener toolListener
}

func NewPencilTool(c color.NRGBA, width float64) *DrawingTool {
	return &DrawingTool{kind: ToolPencil, color: c, width: width}
}

func NewEraserTool(width float64) *DrawingTool {
	return &DrawingTool{kind: ToolEraser, width: width}
}

func NewEllipseTool(c color.NRGBA, width float64) *DrawingTool {
	return &DrawingTool{kind: ToolEllipse, color: c, width: width}
}

func NewRectangleTool(c color.NRGBA, width float64) *DrawingTool {
	return &DrawingTool{kind: ToolRectangle, color: c, width: width}
}

func (t *DrawingTool) Kind() ToolKind {
	return t.kind
}

func (t *DrawingTool) Active() bool {
	return t.active
}

func (t *DrawingTool) isBox() bool {
	return t.kind == ToolEllipse || t.kind == ToolRectangle
}

func (t *DrawingTool) Start(p Point) {
	t.active = true
	t.hasEnd = false
	if t.isBox() {
		t.start = p
		t.points = nil
		return
	}
	t.points = []Point{p}
}

func (t *DrawingTool) Continue(p Point) {
	if !t.active {
		return
	}
	if t.isBox() {
		t.end = p
		t.hasEnd = true
	} else {
		t.points = append(t.points, p)
	}
	if t.listener != nil {
		t.listener.toolNeedsDisplay()
	}
}

// Finish completes the pan. A freehand stroke with fewer than two points is
// dropped; box strokes are emitted even when zero-sized.
func (t *DrawingTool) Finish(p Point) {
	if !t.active {
		return
	}
	var (
		stroke Stroke
		ok     = true
	)
	switch t.kind {
	case ToolPencil, ToolEraser:
		points := append(t.points, p)
		ok = len(points) >= 2
		if t.kind == ToolPencil {
			stroke = NewFreehandStroke(t.color, t.width, points)
		} else {
			stroke = NewEraserStroke(t.width, points)
		}
	case ToolEllipse:
		stroke = NewEllipseStroke(t.color, t.width, t.start, p)
	case ToolRectangle:
		stroke = NewRectangleStroke(t.color, t.width, t.start, p)
	}
	t.reset()
	if t.listener == nil {
		return
	}
	if ok {
		t.listener.toolCreatedStroke(stroke)
	}
	t.listener.toolNeedsDisplay()
}

func (t *DrawingTool) reset() {
	t.active = false
	t.hasEnd = false
	t.points = nil
}

// Cancel drops the in-progress stroke without emitting anything.
func (t *DrawingTool) Cancel() {
	if !t.active {
		return
	}
	t.reset()
	if t.listener != nil {
		t.listener.toolNeedsDisplay()
	}
}

// RenderPreview draws the uncommitted stroke with the committed renderer.
func (t *DrawingTool) RenderPreview(target RenderTarget) {
	if s, ok := t.preview(); ok {
		s.Render(target)
	}
}

func (t *DrawingTool) preview() (Stroke, bool) {
	if !t.active {
		return Stroke{}, false
	}
	switch t.kind {
	case ToolPencil:
		return NewFreehandStroke(t.color, t.width, t.points), len(t.points) > 1
	case ToolEraser:
		return NewEraserStroke(t.width, t.points), len(t.points) > 1
	case ToolEllipse:
		return NewEllipseStroke(t.color, t.width, t.start, t.end), t.hasEnd
	case ToolRectangle:
		return NewRectangleStroke(t.color, t.width, t.start, t.end), t.hasEnd
	}
	return Stroke{}, false
}

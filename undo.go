package main

// SurfaceEvents are the notifications a Surface emits. For a single change
// they fire in this order: NeedsDisplay, UndoRedoChanged (only when either
// flag flipped), FrameAltered.
type SurfaceEvents struct {
	NeedsDisplay    func()
	UndoRedoChanged func(canUndo, canRedo bool)
	FrameAltered    func(f Frame)
}

// Surface is the editing session for the active frame. It owns the stroke
// log and the committed cursor; strokes past the cursor can be redone until
// a new stroke is appended.
type Surface struct {
	size       Size
	committed  int
	strokes    []Stroke
	underlying *Frame
	tool       *DrawingTool
	ghostAlpha float64
	canUndo    bool
	canRedo    bool
	events     SurfaceEvents
}

func NewSurface(size Size, ghostAlpha float64, events SurfaceEvents) *Surface {
	return &Surface{size: size, ghostAlpha: ghostAlpha, events: events}
}

func (s *Surface) SetTool(t *DrawingTool) {
	if s.tool != nil {
		s.tool.Cancel()
		s.tool.listener = nil
	}
	s.tool = t
	if t != nil {
		t.listener = s
	}
}

func (s *Surface) Tool() *DrawingTool {
	return s.tool
}

func (s *Surface) CanUndo() bool {
	return s.canUndo
}

func (s *Surface) CanRedo() bool {
	return s.canRedo
}

func (s *Surface) PanStart(p Point) {
	if s.tool != nil {
		s.tool.Start(p)
	}
}

func (s *Surface) PanContinue(p Point) {
	if s.tool != nil {
		s.tool.Continue(p)
	}
}

func (s *Surface) PanEnd(p Point) {
	if s.tool != nil {
		s.tool.Finish(p)
	}
}

// AppendStroke drops the redo tail and commits stroke.
func (s *Surface) AppendStroke(stroke Stroke) {
	s.strokes = append(s.strokes[:s.committed:s.committed], stroke)
	s.committed = len(s.strokes)
	s.changed()
}

func (s *Surface) Undo() {
	if s.committed <= 0 {
		return
	}
	s.committed--
	s.changed()
}

func (s *Surface) Redo() {
	if s.committed >= len(s.strokes) {
		return
	}
	s.committed++
	s.changed()
}

func (s *Surface) changed() {
	s.clampCursor()
	s.notifyDisplay()
	s.updateUndoRedo()
	if s.events.FrameAltered != nil {
		s.events.FrameAltered(s.Snapshot())
	}
}

// LoadFrame replaces the session with f. underlying, when non-nil, is drawn
// beneath at ghost opacity.
func (s *Surface) LoadFrame(f Frame, underlying *Frame) {
	if s.tool != nil {
		s.tool.reset()
	}
	f = f.clone()
	s.size = f.Size
	s.strokes = f.Strokes
	s.committed = f.Committed
	s.underlying = nil
	if underlying != nil {
		u := underlying.clone()
		s.underlying = &u
	}
	s.clampCursor()
	s.notifyDisplay()
	s.updateUndoRedo()
}

func (s *Surface) Snapshot() Frame {
	return Frame{Size: s.size, Committed: s.committed, Strokes: s.strokes}.clone()
}

// Render draws the ghost frame, the committed strokes and the tool preview.
func (s *Surface) Render(target RenderTarget) {
	if s.underlying != nil {
		for _, st := range s.underlying.Visible() {
			st.WithAlpha(s.ghostAlpha).Render(target)
		}
	}
	for _, st := range s.strokes[:s.committed] {
		st.Render(target)
	}
	if s.tool != nil {
		s.tool.RenderPreview(target)
	}
}

func (s *Surface) clampCursor() {
	if s.committed < 0 {
		s.committed = 0
	}
	if s.committed > len(s.strokes) {
		s.committed = len(s.strokes)
	}
}

func (s *Surface) updateUndoRedo() {
	canUndo := s.committed > 0
	canRedo := s.committed < len(s.strokes)
	if canUndo == s.canUndo && canRedo == s.canRedo {
		return
	}
	s.canUndo, s.canRedo = canUndo, canRedo
	if s.events.UndoRedoChanged != nil {
		s.events.UndoRedoChanged(canUndo, canRedo)
	}
}

func (s *Surface) notifyDisplay() {
	if s.events.NeedsDisplay != nil {
		s.events.NeedsDisplay()
	}
}

func (s *Surface) toolNeedsDisplay() {
	s.notifyDisplay()
}

func (s *Surface) toolCreatedStroke(stroke Stroke) {
	s.AppendStroke(stroke)
}

package main

// editor ties the editing surface to the timeline. The surface reports every
// committed change back to the timeline and the timeline pushes the active
// frame into the surface whenever the cursor or the frame list changes.
type editor struct {
	timeline  *Timeline
	surface   *Surface
	size      Size
	canUndo   bool
	canRedo   bool
	canDelete bool
	redraws   int
}

func newEditor(size Size, config *Config) *editor {
	ed := &editor{size: size}
	ed.surface = NewSurface(size, config.GhostAlpha, SurfaceEvents{
		NeedsDisplay: func() {
			ed.redraws++
		},
		UndoRedoChanged: func(canUndo, canRedo bool) {
			ed.canUndo, ed.canRedo = canUndo, canRedo
		},
		FrameAltered: func(f Frame) {
			ed.timeline.SetActiveFrame(f)
		},
	})
	ed.timeline = NewTimeline(newEmptyFrame(size), config.FPS, TimelineEvents{
		FrameChanged: func(active Frame, underlying *Frame) {
			ed.surface.LoadFrame(active, underlying)
		},
		DeleteAllowed: func(allowed bool) {
			ed.canDelete = allowed
		},
	})
	ed.surface.LoadFrame(ed.timeline.Active(), nil)
	return ed
}

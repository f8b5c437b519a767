package main

// TimelineEvents are emitted after every change to the frame list or the
// active cursor.
type TimelineEvents struct {
	// FrameChanged receives the new active frame and its predecessor, if any.
	FrameChanged func(active Frame, underlying *Frame)
	// DeleteAllowed reports whether more than one frame exists.
	DeleteAllowed func(allowed bool)
}

// Timeline owns the ordered frames, the active cursor and the playback rate.
// It always holds at least one frame.
type Timeline struct {
	frames []Frame
	active int
	fps    int
	locked bool
	events TimelineEvents
}

func NewTimeline(first Frame, fps int, events TimelineEvents) *Timeline {
	if fps <= 0 {
		fps = defaultFPS
	}
	return &Timeline{frames: []Frame{first.clone()}, fps: fps, events: events}
}

func (tl *Timeline) Len() int {
	return len(tl.frames)
}

func (tl *Timeline) ActiveIndex() int {
	return tl.active
}

func (tl *Timeline) Active() Frame {
	return tl.frames[tl.active].clone()
}

// Frames returns a copy of every frame.
func (tl *Timeline) Frames() []Frame {
	out := make([]Frame, len(tl.frames))
	for i, f := range tl.frames {
		out[i] = f.clone()
	}
	return out
}

func (tl *Timeline) FPS() int {
	return tl.fps
}

func (tl *Timeline) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	tl.fps = fps
}

func (tl *Timeline) CanDelete() bool {
	return len(tl.frames) > 1
}

// SetLocked blocks every frame list change and navigation, as during playback.
func (tl *Timeline) SetLocked(locked bool) {
	tl.locked = locked
}

func (tl *Timeline) Locked() bool {
	return tl.locked
}

// SetActiveFrame stores an edited snapshot of the active frame.
func (tl *Timeline) SetActiveFrame(f Frame) {
	tl.frames[tl.active] = f.clone()
}

func (tl *Timeline) AddFrame() {
	if tl.locked {
		return
	}
	last := tl.frames[len(tl.frames)-1]
	tl.frames = append(tl.frames, newEmptyFrame(last.Size))
	tl.active = len(tl.frames) - 1
	tl.changed()
}

func (tl *Timeline) DuplicateFrame() {
	if tl.locked {
		return
	}
	dup := tl.frames[tl.active].clone()
	tl.frames = append(tl.frames, dup)
	tl.active = len(tl.frames) - 1
	tl.changed()
}

// AppendFrames adds generated frames after the last one and activates the
// last of them.
func (tl *Timeline) AppendFrames(frames []Frame) {
	if tl.locked || len(frames) == 0 {
		return
	}
	for _, f := range frames {
		tl.frames = append(tl.frames, f.clone())
	}
	tl.active = len(tl.frames) - 1
	tl.changed()
}

func (tl *Timeline) DeleteActiveFrame() {
	if tl.locked || len(tl.frames) <= 1 {
		return
	}
	tl.frames = append(tl.frames[:tl.active], tl.frames[tl.active+1:]...)
	if tl.active > 0 {
		tl.active--
	}
	tl.changed()
}

func (tl *Timeline) DeleteAllFrames() {
	if tl.locked {
		return
	}
	tl.frames = []Frame{newEmptyFrame(tl.frames[0].Size)}
	tl.active = 0
	tl.changed()
}

// GoTo activates frame index; out of range indices are ignored.
func (tl *Timeline) GoTo(index int) {
	if tl.locked || index < 0 || index >= len(tl.frames) || index == tl.active {
		return
	}
	tl.active = index
	tl.changed()
}

func (tl *Timeline) StepPrevious() {
	tl.GoTo(tl.active - 1)
}

func (tl *Timeline) StepNext() {
	tl.GoTo(tl.active + 1)
}

// Land moves to the last frame even while locked. Used when playback stops.
func (tl *Timeline) Land() {
	tl.active = len(tl.frames) - 1
	tl.changed()
}

func (tl *Timeline) underlying() *Frame {
	if tl.active == 0 {
		return nil
	}
	u := tl.frames[tl.active-1].clone()
	return &u
}

func (tl *Timeline) changed() {
	if tl.events.DeleteAllowed != nil {
		tl.events.DeleteAllowed(tl.CanDelete())
	}
	if tl.events.FrameChanged != nil {
		tl.events.FrameChanged(tl.Active(), tl.underlying())
	}
}

package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// playbackTickMsg is delivered on every display refresh while playing.
// Ticks from an earlier run carry a stale generation and are dropped.
type playbackTickMsg struct {
	generation int
	at         time.Time
}

// Scheduler picks the frame to show from the wall-clock time elapsed since
// Start. It is driven by ticks on the UI loop and never runs concurrently
// with itself.
type Scheduler struct {
	frames     []Frame
	fps        int
	start      time.Time
	running    bool
	generation int
	interval   time.Duration
	now        func() time.Time
}

func NewScheduler(refreshRate int, now func() time.Time) *Scheduler {
	if refreshRate <= 0 {
		refreshRate = defaultRefreshRate
	}
	if now == nil {
		now = time.Now
	}
	return &Scheduler{interval: time.Second / time.Duration(refreshRate), now: now}
}

// Start captures the frames as they are now; later edits are not seen until
// the next Start.
func (s *Scheduler) Start(frames []Frame, fps int) tea.Cmd {
	if len(frames) == 0 || fps <= 0 {
		return nil
	}
	s.frames = make([]Frame, len(frames))
	for i, f := range frames {
		s.frames[i] = f.clone()
	}
	s.fps = fps
	s.start = s.now()
	s.running = true
	s.generation++
	return s.tick()
}

// Stop is idempotent.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.frames = nil
	s.start = time.Time{}
	s.generation++
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Tick handles a tick message and schedules the next one. It reports false
// for ticks that no longer belong to a running playback.
func (s *Scheduler) Tick(msg playbackTickMsg) (tea.Cmd, bool) {
	if !s.running || msg.generation != s.generation {
		return nil, false
	}
	return s.tick(), true
}

func (s *Scheduler) tick() tea.Cmd {
	gen := s.generation
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return playbackTickMsg{generation: gen, at: t}
	})
}

// CurrentIndex is floor(elapsed * fps) mod len(frames).
func (s *Scheduler) CurrentIndex() int {
	if !s.running || len(s.frames) == 0 {
		return 0
	}
	elapsed := s.now().Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	ticks := int64(elapsed) * int64(s.fps) / int64(time.Second)
	return int(ticks % int64(len(s.frames)))
}

func (s *Scheduler) CurrentFrame() (Frame, bool) {
	if !s.running || len(s.frames) == 0 {
		return Frame{}, false
	}
	return s.frames[s.CurrentIndex()], true
}

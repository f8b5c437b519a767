package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func numberedFrames(n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = sealed(Size{Width: 10, Height: 10}, []Stroke{dot(float64(i))})
	}
	return frames
}

func TestSchedulerCurrentIndex(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewScheduler(60, clock.now)
	require.NotNil(t, s.Start(numberedFrames(5), 10))

	tests := []struct {
		at   time.Duration
		want int
	}{
		{0, 0},
		{99 * time.Millisecond, 0},
		{100 * time.Millisecond, 1},
		{350 * time.Millisecond, 3},
		{500 * time.Millisecond, 0},
		{1250 * time.Millisecond, 2},
	}
	base := clock.t
	for _, tc := range tests {
		clock.t = base.Add(tc.at)
		assert.Equal(t, tc.want, s.CurrentIndex(), "at %v", tc.at)
		f, ok := s.CurrentFrame()
		require.True(t, ok)
		assert.Equal(t, float64(tc.want), marker(f))
	}
}

func TestSchedulerSnapshotsFrames(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewScheduler(60, clock.now)
	frames := numberedFrames(2)
	s.Start(frames, 1)
	frames[0].Strokes[0] = dot(7)

	f, ok := s.CurrentFrame()
	require.True(t, ok)
	assert.Equal(t, 0.0, marker(f))
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewScheduler(0, clock.now)
	assert.Equal(t, time.Second/defaultRefreshRate, s.interval)

	s.Stop()
	s.Start(numberedFrames(3), 5)
	assert.True(t, s.Running())
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
	_, ok := s.CurrentFrame()
	assert.False(t, ok)
	assert.Equal(t, 0, s.CurrentIndex())
}

func TestSchedulerRejectsEmptyStart(t *testing.T) {
	s := NewScheduler(60, nil)
	assert.Nil(t, s.Start(nil, 10))
	assert.Nil(t, s.Start(numberedFrames(2), 0))
	assert.False(t, s.Running())
}

func TestSchedulerDropsStaleTicks(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewScheduler(1000, clock.now)

	s.Start(numberedFrames(3), 5)
	first := playbackTickMsg{generation: s.generation}
	cmd, ok := s.Tick(first)
	assert.True(t, ok)
	require.NotNil(t, cmd)
	msg, isTick := cmd().(playbackTickMsg)
	require.True(t, isTick)
	assert.Equal(t, first.generation, msg.generation)

	s.Stop()
	_, ok = s.Tick(first)
	assert.False(t, ok)

	s.Start(numberedFrames(3), 5)
	_, ok = s.Tick(first)
	assert.False(t, ok, "tick from the previous run")
	_, ok = s.Tick(playbackTickMsg{generation: s.generation})
	assert.True(t, ok)
}

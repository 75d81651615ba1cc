package animation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	fn      func()
	delay   time.Duration
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{fn: f, delay: d}
	s.timers = append(s.timers, t)
	return t
}

// fire runs timer i even if it was stopped, like a timer that already
// elapsed when Stop was called.
func (s *fakeScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	s.mu.Unlock()
	t.fn()
}

func TestRevealSchedulesAfterDelay(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	r := New(WithScheduler(sched))
	require.Equal(t, Resting, r.Phase())

	r.SetVisible(true)
	require.Equal(t, ScheduledReveal, r.Phase())
	require.Len(t, sched.timers, 1)
	assert.Equal(t, DefaultDelay, sched.timers[0].delay)

	sched.fire(0)
	assert.Equal(t, Revealed, r.Phase())
	assert.True(t, r.Revealed())
}

func TestRevealReentryCancelsStaleTimer(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	r := New(WithScheduler(sched))

	r.SetVisible(true)
	r.SetVisible(true)
	require.Len(t, sched.timers, 2)
	assert.True(t, sched.timers[0].stopped)
	assert.False(t, sched.timers[1].stopped)

	sched.fire(0)
	assert.Equal(t, ScheduledReveal, r.Phase(), "stale timer must not reveal")

	sched.fire(1)
	assert.Equal(t, Revealed, r.Phase())
}

func TestRevealHidingReturnsToResting(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	r := New(WithScheduler(sched))

	r.SetVisible(true)
	r.SetVisible(false)
	assert.Equal(t, Resting, r.Phase())
	assert.True(t, sched.timers[0].stopped)

	sched.fire(0)
	assert.Equal(t, Resting, r.Phase())

	r.SetVisible(true)
	sched.fire(1)
	require.Equal(t, Revealed, r.Phase())

	r.SetVisible(false)
	assert.Equal(t, Resting, r.Phase())
}

func TestRevealStaysRevealedWhileVisible(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	r := New(WithScheduler(sched))
	r.SetVisible(true)
	sched.fire(0)

	r.SetVisible(true)
	assert.Equal(t, Revealed, r.Phase())
	assert.Len(t, sched.timers, 1)
}

func TestRevealOnChange(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	var phases []Phase
	r := New(WithScheduler(sched), OnChange(func(p Phase) { phases = append(phases, p) }))

	r.SetVisible(true)
	r.SetVisible(true)
	sched.fire(1)
	r.SetVisible(false)
	r.SetVisible(false)

	assert.Equal(t, []Phase{ScheduledReveal, Revealed, Resting}, phases)
}

func TestRevealWithSystemScheduler(t *testing.T) {
	t.Parallel()

	done := make(chan Phase, 1)
	r := New(WithDelay(5*time.Millisecond), OnChange(func(p Phase) {
		if p == Revealed {
			done <- p
		}
	}))
	r.SetVisible(true)

	select {
	case p := <-done:
		assert.Equal(t, Revealed, p)
	case <-time.After(2 * time.Second):
		t.Fatal("reveal did not fire")
	}
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "resting", Resting.String())
	assert.Equal(t, "scheduled", ScheduledReveal.String())
	assert.Equal(t, "revealed", Revealed.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/internal/domain/entity"
)

// fakeLoop records timers and fires them by hand.
type fakeLoop struct {
	now     time.Time
	timers  []*fakeTimer
	stopped int
}

type fakeTimer struct {
	interval time.Duration
	f        func() bool
	live     bool
}

func (l *fakeLoop) every(interval time.Duration, f func() bool) func() {
	tm := &fakeTimer{interval: interval, f: f, live: true}
	l.timers = append(l.timers, tm)
	return func() {
		tm.live = false
		l.stopped++
	}
}

func (l *fakeLoop) clock() time.Time { return l.now }

// tick advances the clock and fires every live timer once.
func (l *fakeLoop) tick(d time.Duration) {
	l.now = l.now.Add(d)
	for _, tm := range l.timers {
		if tm.live {
			tm.live = tm.f()
		}
	}
}

func TestAnimator_ReachesTargetAndCallsDone(t *testing.T) {
	loop := &fakeLoop{now: time.Unix(0, 0)}
	anim := NewAnimator(loop.every, loop.clock)

	var widths []int
	done := 0
	anim.Animate(220, 56, 200*time.Millisecond, func(w int) { widths = append(widths, w) }, func() { done++ })

	require.Len(t, loop.timers, 1)
	assert.Equal(t, FrameInterval, loop.timers[0].interval)

	loop.tick(100 * time.Millisecond)
	require.Len(t, widths, 1)
	assert.Equal(t, entity.InterpolateWidth(220, 56, 0.5), widths[0])
	assert.Zero(t, done)

	loop.tick(100 * time.Millisecond)
	assert.Equal(t, 56, widths[len(widths)-1])
	assert.Equal(t, 1, done)
	assert.False(t, loop.timers[0].live)

	loop.tick(100 * time.Millisecond)
	assert.Equal(t, 1, done, "finished animation never ticks again")
}

func TestAnimator_MonotonicWidths(t *testing.T) {
	loop := &fakeLoop{now: time.Unix(0, 0)}
	anim := NewAnimator(loop.every, loop.clock)

	var widths []int
	anim.Animate(56, 300, 200*time.Millisecond, func(w int) { widths = append(widths, w) }, nil)
	for i := 0; i < 20; i++ {
		loop.tick(FrameInterval)
	}

	require.NotEmpty(t, widths)
	for i := 1; i < len(widths); i++ {
		assert.GreaterOrEqual(t, widths[i], widths[i-1])
	}
	assert.Equal(t, 300, widths[len(widths)-1])
}

func TestAnimator_CancelStopsTimer(t *testing.T) {
	loop := &fakeLoop{now: time.Unix(0, 0)}
	anim := NewAnimator(loop.every, loop.clock)

	steps := 0
	cancel := anim.Animate(220, 56, 200*time.Millisecond, func(int) { steps++ }, func() { t.Fatal("done after cancel") })
	loop.tick(FrameInterval)
	cancel()
	cancel()
	loop.tick(time.Second)

	assert.Equal(t, 1, steps)
	assert.Equal(t, 1, loop.stopped, "stop called exactly once")
}

func TestAnimator_ZeroDurationIsImmediate(t *testing.T) {
	loop := &fakeLoop{now: time.Unix(0, 0)}
	anim := NewAnimator(loop.every, loop.clock)

	got := 0
	done := false
	cancel := anim.Animate(100, 200, 0, func(w int) { got = w }, func() { done = true })

	assert.Equal(t, 200, got)
	assert.True(t, done)
	assert.Empty(t, loop.timers)
	assert.NotPanics(t, cancel)
}

func TestScheduler_AfterFunc(t *testing.T) {
	t.Run("fires once", func(t *testing.T) {
		loop := &fakeLoop{}
		s := NewScheduler(loop.every)

		fired := 0
		cancel := s.AfterFunc(entity.SidebarRevealDelay, func() { fired++ })
		require.Len(t, loop.timers, 1)
		assert.Equal(t, entity.SidebarRevealDelay, loop.timers[0].interval)

		loop.tick(entity.SidebarRevealDelay)
		loop.tick(entity.SidebarRevealDelay)
		assert.Equal(t, 1, fired)

		cancel()
		assert.Zero(t, loop.stopped, "cancel after firing does not remove the source")
	})

	t.Run("cancel before firing", func(t *testing.T) {
		loop := &fakeLoop{}
		s := NewScheduler(loop.every)

		fired := false
		cancel := s.AfterFunc(time.Millisecond, func() { fired = true })
		cancel()
		loop.tick(time.Second)

		assert.False(t, fired)
		assert.Equal(t, 1, loop.stopped)
	})
}

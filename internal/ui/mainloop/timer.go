package mainloop

import (
	"time"

	"github.com/void-browser/void/internal/domain/entity"
)

// FrameInterval is the animation tick period (about 60 fps).
const FrameInterval = 16 * time.Millisecond

// EveryFunc calls f every interval until f returns false or stop is called.
// stop must not be called after f returned false.
type EveryFunc func(interval time.Duration, f func() bool) (stop func())

// Animator interpolates widths with ease-out cubic on the main loop.
type Animator struct {
	every EveryFunc
	now   func() time.Time
}

// NewAnimator creates an animator driven by every and now.
func NewAnimator(every EveryFunc, now func() time.Time) *Animator {
	if now == nil {
		now = time.Now
	}
	return &Animator{every: every, now: now}
}

// Animate implements port.Animator.
func (a *Animator) Animate(from, to int, duration time.Duration, step func(width int), done func()) (cancel func()) {
	if duration <= 0 || from == to {
		step(to)
		if done != nil {
			done()
		}
		return func() {}
	}

	start := a.now()
	finished := false
	stop := a.every(FrameInterval, func() bool {
		if finished {
			return false
		}
		t := float64(a.now().Sub(start)) / float64(duration)
		if t >= 1 {
			finished = true
			step(to)
			if done != nil {
				done()
			}
			return false
		}
		step(entity.InterpolateWidth(from, to, t))
		return true
	})

	return func() {
		if finished {
			return
		}
		finished = true
		stop()
	}
}

// Scheduler runs one-shot callbacks on the main loop.
type Scheduler struct {
	every EveryFunc
}

// NewScheduler creates a scheduler driven by every.
func NewScheduler(every EveryFunc) *Scheduler {
	return &Scheduler{every: every}
}

// AfterFunc implements port.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) (cancel func()) {
	fired := false
	stop := s.every(d, func() bool {
		if fired {
			return false
		}
		fired = true
		f()
		return false
	})
	return func() {
		if fired {
			return
		}
		fired = true
		stop()
	}
}

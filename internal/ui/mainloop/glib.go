package mainloop

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// GlibEvery is an EveryFunc backed by glib.TimeoutAdd.
func GlibEvery(interval time.Duration, f func() bool) (stop func()) {
	handle := glib.TimeoutAdd(uint(interval.Milliseconds()), f)
	return func() { glib.SourceRemove(handle) }
}

// IdlePost runs fn once on the main loop. Safe from any goroutine.
func IdlePost(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

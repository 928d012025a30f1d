package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/void-browser/void/internal/application/port"
)

type fakeSurface struct {
	uri       string
	title     string
	loads     []string
	back      int
	forward   int
	reloads   int
	cb        *port.SurfaceCallbacks
	detached  bool
	destroyed bool
}

func (s *fakeSurface) LoadURI(uri string) {
	s.loads = append(s.loads, uri)
	s.uri = uri
}
func (s *fakeSurface) URI() string   { return s.uri }
func (s *fakeSurface) Title() string { return s.title }
func (s *fakeSurface) GoBack()       { s.back++ }
func (s *fakeSurface) GoForward()    { s.forward++ }
func (s *fakeSurface) Reload()       { s.reloads++ }
func (s *fakeSurface) SetCallbacks(cb *port.SurfaceCallbacks) {
	s.cb = cb
}
func (s *fakeSurface) Detach() {
	s.detached = true
	s.cb = nil
}
func (s *fakeSurface) Destroy()          { s.destroyed = true }
func (s *fakeSurface) IsDestroyed() bool { return s.destroyed }

// emitTitle simulates the page reporting a title.
func (s *fakeSurface) emitTitle(title string) {
	if s.cb != nil && s.cb.OnTitleChanged != nil {
		s.cb.OnTitleChanged(title)
	}
}

func (s *fakeSurface) emitIcon(icon port.Favicon) {
	if s.cb != nil && s.cb.OnIconChanged != nil {
		s.cb.OnIconChanged(icon)
	}
}

func (s *fakeSurface) emitURI(uri string) {
	s.uri = uri
	if s.cb != nil && s.cb.OnURIChanged != nil {
		s.cb.OnURIChanged(uri)
	}
}

type fakeFactory struct {
	created []*fakeSurface
	err     error
}

func (f *fakeFactory) Create(context.Context) (port.Surface, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &fakeSurface{}
	f.created = append(f.created, s)
	return s, nil
}

type fakeEntry struct {
	title   string
	icon    port.Favicon
	active  bool
	compact bool
	removed bool
	cb      port.TabEntryCallbacks
}

func (e *fakeEntry) SetTitle(title string)    { e.title = title }
func (e *fakeEntry) SetIcon(icon port.Favicon) { e.icon = icon }
func (e *fakeEntry) SetActive(active bool)    { e.active = active }
func (e *fakeEntry) SetCompact(compact bool)  { e.compact = compact }

type fakeSidebar struct {
	entries []*fakeEntry
	width   int
	widths  []int
}

func (s *fakeSidebar) AddEntry(title string, cb port.TabEntryCallbacks) port.TabEntryView {
	e := &fakeEntry{title: title, cb: cb}
	s.entries = append(s.entries, e)
	return e
}

func (s *fakeSidebar) RemoveEntry(entry port.TabEntryView) {
	for i, e := range s.entries {
		if e == entry {
			e.removed = true
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *fakeSidebar) SetWidth(width int) {
	s.width = width
	s.widths = append(s.widths, width)
}

func (s *fakeSidebar) Width() int { return s.width }

type fakeURLBar struct{ text string }

func (b *fakeURLBar) SetText(text string) { b.text = text }
func (b *fakeURLBar) Text() string        { return b.text }

type fakeHost struct {
	attached  map[string]port.Surface
	presented string
}

func newFakeHost() *fakeHost { return &fakeHost{attached: map[string]port.Surface{}} }

func (h *fakeHost) Attach(key string, s port.Surface) { h.attached[key] = s }
func (h *fakeHost) Present(key string)                { h.presented = key }
func (h *fakeHost) Remove(key string)                 { delete(h.attached, key) }

// fakeAnimation is an animation the test drives by hand.
type fakeAnimation struct {
	from, to  int
	step      func(int)
	done      func()
	cancelled bool
}

// finish runs the final step and the completion, even when cancelled,
// to emulate callbacks already queued on the main loop.
func (a *fakeAnimation) finish() {
	a.step(a.to)
	if a.done != nil {
		a.done()
	}
}

type fakeAnimator struct {
	runs []*fakeAnimation
}

func (f *fakeAnimator) Animate(from, to int, _ time.Duration, step func(int), done func()) func() {
	a := &fakeAnimation{from: from, to: to, step: step, done: done}
	f.runs = append(f.runs, a)
	return func() { a.cancelled = true }
}

func (f *fakeAnimator) last() *fakeAnimation {
	if len(f.runs) == 0 {
		return nil
	}
	return f.runs[len(f.runs)-1]
}

type fakeTimer struct {
	d         time.Duration
	f         func()
	cancelled bool
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// fire runs every timer, cancelled or not.
func (s *fakeScheduler) fire() {
	timers := s.timers
	s.timers = nil
	for _, t := range timers {
		t.f()
	}
}

type fakeLabels struct {
	compact bool
	calls   int
}

func (l *fakeLabels) SetCompact(compact bool) {
	l.compact = compact
	l.calls++
}

var errDiskFull = errors.New("disk full")

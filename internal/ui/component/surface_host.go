package component

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/logging"
)

// widgetSurface is a surface that can be packed into GTK containers.
type widgetSurface interface {
	Widget() (gtk.Widgetter, error)
}

// SurfaceHost stacks tab surfaces and shows one at a time.
type SurfaceHost struct {
	ctx     context.Context
	stack   *gtk.Stack
	widgets map[string]gtk.Widgetter
}

var _ port.SurfaceHost = (*SurfaceHost)(nil)

// NewSurfaceHost creates an empty stack.
func NewSurfaceHost(ctx context.Context) *SurfaceHost {
	stack := gtk.NewStack()
	stack.SetHExpand(true)
	stack.SetVExpand(true)
	stack.SetTransitionType(gtk.StackTransitionTypeNone)
	return &SurfaceHost{
		ctx:     ctx,
		stack:   stack,
		widgets: make(map[string]gtk.Widgetter),
	}
}

// Widget returns the stack.
func (h *SurfaceHost) Widget() gtk.Widgetter { return h.stack }

func (h *SurfaceHost) Attach(key string, s port.Surface) {
	ws, ok := s.(widgetSurface)
	if !ok {
		logging.FromContext(h.ctx).Error().Str("tab_id", key).Msg("surface has no widget")
		return
	}
	widget, err := ws.Widget()
	if err != nil {
		logging.FromContext(h.ctx).Error().Err(err).Str("tab_id", key).Msg("cannot attach surface")
		return
	}
	h.stack.AddNamed(widget, key)
	h.widgets[key] = widget
}

func (h *SurfaceHost) Present(key string) {
	if _, ok := h.widgets[key]; ok {
		h.stack.SetVisibleChildName(key)
	}
}

func (h *SurfaceHost) Remove(key string) {
	widget, ok := h.widgets[key]
	if !ok {
		return
	}
	delete(h.widgets, key)
	h.stack.Remove(widget)
}

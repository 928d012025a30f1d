// Package webkit adapts WebKitGTK to the browser's surface, profile and
// bridge ports.
package webkit

import (
	"context"
	"errors"
	"sync"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/logging"
)

// ErrSurfaceDestroyed is returned by operations on a destroyed surface.
var ErrSurfaceDestroyed = errors.New("webkit: surface destroyed")

// Surface wraps a WebKitGTK WebView as one tab's rendering surface.
type Surface struct {
	view    *webkit.WebView
	ucm     *webkit.UserContentManager
	id      uint64
	profile *Profile
	ctx     context.Context

	mu        sync.RWMutex
	callbacks *port.SurfaceCallbacks
	destroyed bool
}

var _ port.Surface = (*Surface)(nil)

func newSurface(ctx context.Context, id uint64, profile *Profile) (*Surface, error) {
	view := newSessionWebView(profile.session)
	if view == nil {
		return nil, errors.New("webkit: failed to create web view")
	}

	s := &Surface{
		view:    view,
		ucm:     view.UserContentManager(),
		id:      id,
		profile: profile,
		ctx:     ctx,
	}
	s.applySettings()
	s.installScripts()
	s.connectSignals()
	return s, nil
}

func (s *Surface) applySettings() {
	settings := s.view.Settings()
	if settings == nil {
		return
	}
	settings.SetEnableJavascript(true)
	settings.SetEnableFullscreen(false)
	settings.SetAllowFileAccessFromFileUrls(true)
	settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
}

// installScripts injects the bridge shim into bundled pages and registers the
// message channel it posts to.
func (s *Surface) installScripts() {
	if s.ucm == nil {
		return
	}
	log := logging.FromContext(s.ctx)

	s.ucm.AddScript(webkit.NewUserScript(
		s.profile.bridgeScript,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		[]string{"file://*/*"},
		nil,
	))

	s.ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if value == nil || s.IsDestroyed() {
			return
		}
		s.profile.router.Dispatch(s, s.URI(), value.ToJson(0))
	})
	if !s.ucm.RegisterScriptMessageHandler(MessageHandlerName, "") {
		log.Warn().Str("handler", MessageHandlerName).Msg("RegisterScriptMessageHandler returned false")
	}

	s.profile.filter.Apply(s.ctx, s.ucm, s.profile.tracker.Enabled())
}

func (s *Surface) connectSignals() {
	s.view.Connect("notify::title", func() {
		if cb := s.currentCallbacks(); cb != nil && cb.OnTitleChanged != nil {
			cb.OnTitleChanged(s.view.Title())
		}
	})

	s.view.Connect("notify::uri", func() {
		if cb := s.currentCallbacks(); cb != nil && cb.OnURIChanged != nil {
			cb.OnURIChanged(s.view.URI())
		}
	})

	s.view.Connect("notify::favicon", func() {
		if cb := s.currentCallbacks(); cb != nil && cb.OnIconChanged != nil {
			cb.OnIconChanged(s.favicon())
		}
	})

	s.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		cb := s.currentCallbacks()
		if cb == nil || cb.OnLoadChanged == nil {
			return
		}
		cb.OnLoadChanged(toPortLoadEvent(event))
	})

	s.view.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, typ webkit.PolicyDecisionType) bool {
		if typ != webkit.PolicyDecisionTypeNavigationAction {
			return false
		}
		nav, ok := decision.(*webkit.NavigationPolicyDecision)
		if !ok {
			return false
		}
		action := nav.NavigationAction()
		if action == nil || action.Request() == nil {
			return false
		}
		uri := action.Request().URI()
		if !s.profile.tracker.ShouldBlock(uri) {
			return false
		}
		logging.FromContext(s.ctx).Debug().Str("url", uri).Msg("blocked tracker navigation")
		webkit.BasePolicyDecision(decision).Ignore()
		return true
	})
}

// favicon returns the page icon as a paintable, or nil when the page has none.
func (s *Surface) favicon() port.Favicon {
	if !hasFavicon(s.view) {
		return nil
	}
	return gdk.BaseTexture(s.view.Favicon())
}

func toPortLoadEvent(event webkit.LoadEvent) port.LoadEvent {
	switch event {
	case webkit.LoadRedirected:
		return port.LoadRedirected
	case webkit.LoadCommitted:
		return port.LoadCommitted
	case webkit.LoadFinished:
		return port.LoadFinished
	default:
		return port.LoadStarted
	}
}

func (s *Surface) currentCallbacks() *port.SurfaceCallbacks {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.destroyed {
		return nil
	}
	return s.callbacks
}

// ID returns the surface's profile-local identifier.
func (s *Surface) ID() uint64 { return s.id }

// Widget returns the view for packing into the window.
func (s *Surface) Widget() (gtk.Widgetter, error) {
	if s.IsDestroyed() {
		return nil, ErrSurfaceDestroyed
	}
	return s.view, nil
}

// LoadURI navigates to uri. Calls after Destroy are ignored.
func (s *Surface) LoadURI(uri string) {
	if s.IsDestroyed() || uri == "" {
		return
	}
	s.view.LoadURI(uri)
}

// URI returns the current URI.
func (s *Surface) URI() string {
	if s.IsDestroyed() {
		return ""
	}
	return s.view.URI()
}

// Title returns the current page title.
func (s *Surface) Title() string {
	if s.IsDestroyed() {
		return ""
	}
	return s.view.Title()
}

func (s *Surface) GoBack() {
	if !s.IsDestroyed() && s.view.CanGoBack() {
		s.view.GoBack()
	}
}

func (s *Surface) GoForward() {
	if !s.IsDestroyed() && s.view.CanGoForward() {
		s.view.GoForward()
	}
}

func (s *Surface) Reload() {
	if !s.IsDestroyed() {
		s.view.Reload()
	}
}

// SetCallbacks replaces the event callbacks.
func (s *Surface) SetCallbacks(cb *port.SurfaceCallbacks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = cb
}

// Detach stops any load in progress and silences callbacks.
func (s *Surface) Detach() {
	s.SetCallbacks(nil)
	if s.IsDestroyed() {
		return
	}
	if s.view.IsLoading() {
		s.view.StopLoading()
	}
}

// Destroy unregisters the surface from its profile and releases the view.
func (s *Surface) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	s.callbacks = nil
	s.mu.Unlock()

	if s.ucm != nil {
		s.ucm.UnregisterScriptMessageHandler(MessageHandlerName, "")
		s.ucm.RemoveAllScripts()
	}
	s.profile.forget(s.id)
	s.view.TryClose()
}

// IsDestroyed reports whether Destroy has run.
func (s *Surface) IsDestroyed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destroyed
}

// RunJavaScript evaluates script in the main world without waiting for a result.
func (s *Surface) RunJavaScript(ctx context.Context, script string) {
	if err := s.EvaluateScript(ctx, script); err != nil {
		logging.FromContext(s.ctx).Debug().Err(err).Msg("skipped script evaluation")
	}
}

// EvaluateScript evaluates script in the main world.
func (s *Surface) EvaluateScript(ctx context.Context, script string) error {
	if s.IsDestroyed() {
		return ErrSurfaceDestroyed
	}
	if ctx == nil {
		ctx = s.ctx
	}
	s.view.EvaluateJavascript(ctx, script, "", "", nil)
	return nil
}

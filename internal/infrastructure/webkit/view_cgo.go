package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4
#include <webkit/webkit.h>

// network-session is construct-only, so it must be set during g_object_new.
static inline WebKitWebView* void_web_view_new_for_session(WebKitNetworkSession* session) {
	return WEBKIT_WEB_VIEW(g_object_new(
		WEBKIT_TYPE_WEB_VIEW,
		"network-session", session,
		NULL
	));
}

static inline gboolean void_web_view_has_favicon(WebKitWebView* view) {
	return webkit_web_view_get_favicon(view) != NULL;
}
*/
import "C"

import (
	"unsafe"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// newSessionWebView creates a WebView bound to session. gotk4-webkitgtk has no
// constructor taking construct-only properties, so the Go wrapper is assembled
// the way gotk4 does internally.
func newSessionWebView(session *webkit.NetworkSession) *webkit.WebView {
	if session == nil {
		return webkit.NewWebView()
	}
	sessionObj := coreglib.InternObject(session)
	if sessionObj == nil {
		return webkit.NewWebView()
	}

	native := C.void_web_view_new_for_session((*C.WebKitNetworkSession)(unsafe.Pointer(sessionObj.Native())))
	if native == nil {
		return nil
	}

	obj := coreglib.Take(unsafe.Pointer(native))
	return &webkit.WebView{
		WebViewBase: webkit.WebViewBase{
			Widget: gtk.Widget{
				InitiallyUnowned: coreglib.InitiallyUnowned{Object: obj},
				Object:           obj,
				Accessible:       gtk.Accessible{Object: obj},
				Buildable:        gtk.Buildable{Object: obj},
				ConstraintTarget: gtk.ConstraintTarget{Object: obj},
			},
		},
	}
}

// hasFavicon reports whether view has an icon. The generated Favicon getter
// panics on NULL.
func hasFavicon(view *webkit.WebView) bool {
	obj := coreglib.InternObject(view)
	return C.void_web_view_has_favicon((*C.WebKitWebView)(unsafe.Pointer(obj.Native()))) != 0
}

// Package window provides the frameless browser window.
package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/logging"
	"github.com/void-browser/void/internal/ui/component"
	"github.com/void-browser/void/internal/ui/theme"
)

const (
	defaultWidth  = 1200
	defaultHeight = 800
	windowTitle   = "Void"
)

// Actions are the toolbar and window callbacks. Nil entries are ignored.
type Actions struct {
	Back     func()
	Forward  func()
	Reload   func()
	NewTab   func()
	Navigate func(text string)
	// Closing runs once when the window is about to close.
	Closing func()
}

// MainWindow is the frameless browser window: a title strip with navigation
// and window buttons above the tab sidebar and the surface stack.
type MainWindow struct {
	window     *gtk.ApplicationWindow
	root       *gtk.Box
	titleStrip *gtk.Box
	title      *gtk.Label
	maximize   *gtk.Button
	body       *gtk.Box

	sidebar *component.Sidebar
	host    *component.SurfaceHost
	urlBar  *component.URLBar
	chrome  *chrome

	actions Actions
	closed  bool
}

// New creates the main window on app with a sidebar of sidebarWidth.
func New(ctx context.Context, app *gtk.Application, sidebarWidth int, actions Actions) (*MainWindow, error) {
	ctx = logging.WithComponent(ctx, "main-window")

	win := gtk.NewApplicationWindow(app)
	if win == nil {
		return nil, ErrWindowCreationFailed
	}
	win.SetTitle(windowTitle)
	win.SetDefaultSize(defaultWidth, defaultHeight)
	win.SetSizeRequest(minimumSize())
	win.SetDecorated(false)
	win.AddCSSClass(theme.ClassWindow)

	mw := &MainWindow{
		window:  win,
		root:    gtk.NewBox(gtk.OrientationVertical, 0),
		body:    gtk.NewBox(gtk.OrientationHorizontal, 0),
		sidebar: component.NewSidebar(sidebarWidth),
		host:    component.NewSurfaceHost(ctx),
		actions: actions,
	}
	mw.urlBar = component.NewURLBar(func(text string) {
		if mw.actions.Navigate != nil {
			mw.actions.Navigate(text)
		}
	})

	mw.buildTitleStrip()

	mw.body.SetVExpand(true)
	mw.body.Append(mw.sidebar.Widget())
	mw.body.Append(mw.host.Widget())

	mw.root.Append(mw.titleStrip)
	mw.root.Append(mw.body)
	win.SetChild(mw.root)

	win.ConnectCloseRequest(func() bool {
		mw.notifyClosing()
		return false
	})
	win.Connect("notify::maximized", mw.syncMaximizeIcon)

	mw.chrome = attachChrome(ctx, win, mw.titleStrip)

	logging.FromContext(ctx).Debug().
		Int("width", defaultWidth).
		Int("height", defaultHeight).
		Msg("main window created")
	return mw, nil
}

// minimumSize is the window's size request. The compositor applies it to
// every interactive resize.
func minimumSize() (width, height int) {
	return entity.MinWindowWidth, entity.MinWindowHeight
}

func (mw *MainWindow) buildTitleStrip() {
	mw.titleStrip = gtk.NewBox(gtk.OrientationHorizontal, 4)
	mw.titleStrip.AddCSSClass(theme.ClassTitleStrip)

	mw.title = gtk.NewLabel(windowTitle)
	mw.title.AddCSSClass(theme.ClassTitle)
	mw.titleStrip.Append(mw.title)

	mw.titleStrip.Append(navButton("go-previous-symbolic", "Back", func() { call(mw.actions.Back) }))
	mw.titleStrip.Append(navButton("go-next-symbolic", "Forward", func() { call(mw.actions.Forward) }))
	mw.titleStrip.Append(navButton("view-refresh-symbolic", "Reload", func() { call(mw.actions.Reload) }))
	mw.titleStrip.Append(navButton("tab-new-symbolic", "New tab", func() { call(mw.actions.NewTab) }))

	url := mw.urlBar.Widget()
	mw.titleStrip.Append(url)

	minimize := windowButton("window-minimize-symbolic", "Minimize", mw.window.Minimize)
	mw.maximize = windowButton("window-maximize-symbolic", "Maximize", mw.ToggleMaximize)
	closeBtn := windowButton("window-close-symbolic", "Close", mw.window.Close)
	closeBtn.AddCSSClass(theme.ClassCloseWindow)

	mw.titleStrip.Append(minimize)
	mw.titleStrip.Append(mw.maximize)
	mw.titleStrip.Append(closeBtn)
}

func navButton(icon, tooltip string, onClick func()) *gtk.Button {
	b := gtk.NewButtonFromIconName(icon)
	b.AddCSSClass(theme.ClassNavButton)
	b.SetTooltipText(tooltip)
	b.SetFocusOnClick(false)
	b.ConnectClicked(onClick)
	return b
}

func windowButton(icon, tooltip string, onClick func()) *gtk.Button {
	b := gtk.NewButtonFromIconName(icon)
	b.AddCSSClass(theme.ClassWindowButton)
	b.SetTooltipText(tooltip)
	b.SetFocusOnClick(false)
	b.ConnectClicked(onClick)
	return b
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func (mw *MainWindow) notifyClosing() {
	if mw.closed {
		return
	}
	mw.closed = true
	call(mw.actions.Closing)
}

// ToggleMaximize maximizes the window or restores it.
func (mw *MainWindow) ToggleMaximize() {
	if mw.window.IsMaximized() {
		mw.window.Unmaximize()
	} else {
		mw.window.Maximize()
	}
}

func (mw *MainWindow) syncMaximizeIcon() {
	if mw.window.IsMaximized() {
		mw.maximize.SetIconName("window-restore-symbolic")
		mw.maximize.SetTooltipText("Restore")
		return
	}
	mw.maximize.SetIconName("window-maximize-symbolic")
	mw.maximize.SetTooltipText("Maximize")
}

// Sidebar returns the tab list.
func (mw *MainWindow) Sidebar() *component.Sidebar { return mw.sidebar }

// Host returns the surface stack.
func (mw *MainWindow) Host() *component.SurfaceHost { return mw.host }

// URLBar returns the address entry.
func (mw *MainWindow) URLBar() *component.URLBar { return mw.urlBar }

// Window returns the GTK window, e.g. as a dialog parent.
func (mw *MainWindow) Window() *gtk.Window { return &mw.window.Window }

// Display returns the window's display.
func (mw *MainWindow) Display() *gdk.Display { return mw.window.Widget.Display() }

// Show presents the window.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

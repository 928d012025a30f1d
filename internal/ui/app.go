// Package ui builds the browser window and runs the GTK application.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/assets"
	"github.com/void-browser/void/internal/application/usecase"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/domain/url"
	"github.com/void-browser/void/internal/infrastructure/webkit"
	"github.com/void-browser/void/internal/logging"
	"github.com/void-browser/void/internal/ui/dialog"
	"github.com/void-browser/void/internal/ui/mainloop"
	"github.com/void-browser/void/internal/ui/window"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "io.github.voidbrowser.Void"

	settingsSyncKey = "settings"
)

// App wraps the GTK Application and manages the browser lifecycle.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow

	profile    *webkit.Profile
	router     *webkit.MessageRouter
	bridge     *usecase.BridgeUseCase
	tabsUC     *usecase.ManageTabsUseCase
	navigateUC *usecase.NavigateUseCase
	downloadUC *usecase.HandleDownloadUseCase
	collapse   *usecase.SidebarCollapseController

	settingsSync *mainloop.Coalescer[string]

	ctx    context.Context
	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancelCause(deps.Ctx)
	return &App{
		deps:   deps,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run() int {
	ctx := a.ctx
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	// Arguments were parsed by the CLI already.
	return a.gtkApp.Run(os.Args[:1])
}

// onActivate builds the window on first activation and raises it afterwards.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}
	if err := a.build(ctx); err != nil {
		log.Error().Err(err).Msg("failed to build browser window")
		a.gtkApp.Quit()
		return
	}
	a.mainWindow.Show()
}

func (a *App) build(ctx context.Context) error {
	settings := a.deps.Settings.Normalize()

	a.router = webkit.NewMessageRouter(ctx, webkit.InstallDirPolicy(a.deps.InstallDir))
	a.bridge = usecase.NewBridgeUseCase(a.deps.Store, settings, a.deps.Tracker, a.deps.InstallDir)
	if err := webkit.RegisterBridgeHandlers(a.router, a.bridge); err != nil {
		return fmt.Errorf("register bridge handlers: %w", err)
	}

	profile, err := a.createProfile(ctx)
	if err != nil {
		return err
	}
	a.profile = profile

	mw, err := window.New(ctx, a.gtkApp, settings.SidebarWidth, window.Actions{
		Back:     func() { a.tabsUC.Back() },
		Forward:  func() { a.tabsUC.Forward() },
		Reload:   func() { a.tabsUC.Reload() },
		NewTab:   func() { a.openTab(ctx, "") },
		Navigate: func(text string) { a.navigate(ctx, text) },
		Closing:  func() { a.tabsUC.CloseAll(ctx) },
	})
	if err != nil {
		return err
	}
	a.mainWindow = mw
	a.deps.Theme.ApplyToDisplay(ctx, mw.Display())

	a.tabsUC = usecase.NewManageTabsUseCase(profile, mw.Sidebar(), mw.Host(), mw.URLBar(), a.homeURL)
	a.navigateUC = usecase.NewNavigateUseCase(a.tabsUC, a.deps.InstallDir)

	a.collapse = usecase.NewSidebarCollapseController(
		mw.Sidebar(),
		a.tabsUC,
		mainloop.NewAnimator(mainloop.GlibEvery, time.Now),
		mainloop.NewScheduler(mainloop.GlibEvery),
		settings.SidebarWidth,
		settings.AutoCollapse,
	)
	mw.Sidebar().SetHoverHandlers(
		func() { a.collapse.PointerEnter(ctx) },
		func() { a.collapse.PointerLeave(ctx) },
	)
	a.bridge.Attach(a.collapse, profile)

	picker := dialog.NewSaveDialog(dialog.NewNativeSavePrompt(mw.Window()))
	a.downloadUC = usecase.NewHandleDownloadUseCase(picker, a.deps.Paths.DownloadDir)
	profile.SetDownloadHandler(a.downloadUC.Handle)

	a.watchSettings(ctx)
	a.openTab(ctx, a.deps.InitialURL)
	return nil
}

func (a *App) createProfile(ctx context.Context) (*webkit.Profile, error) {
	dataDir, err := a.deps.Paths.ProfileDataDir()
	if err != nil {
		return nil, fmt.Errorf("profile data dir: %w", err)
	}
	cacheDir, err := a.deps.Paths.ProfileCacheDir()
	if err != nil {
		return nil, fmt.Errorf("profile cache dir: %w", err)
	}
	filterDir, err := a.deps.Paths.FilterStoreDir()
	if err != nil {
		return nil, fmt.Errorf("filter store dir: %w", err)
	}

	return webkit.NewProfile(ctx, webkit.ProfileConfig{
		DataDir:        dataDir,
		CacheDir:       cacheDir,
		FilterStoreDir: filterDir,
		BridgeScript:   assets.BridgeScript,
	}, a.deps.Tracker, a.router)
}

func (a *App) homeURL() string {
	return a.navigateUC.HomeURL(a.bridge.GetSettings())
}

// openTab adds a tab for raw user input; empty input opens the home page.
func (a *App) openTab(ctx context.Context, raw string) {
	log := logging.FromContext(ctx)

	target, err := url.ResolveInput(raw, a.deps.InstallDir)
	if err != nil {
		log.Warn().Err(err).Str("input", raw).Msg("ignoring startup URL")
		target = ""
	}
	if _, _, err := a.tabsUC.AddTab(ctx, target, ""); err != nil {
		log.Error().Err(err).Msg("failed to open tab")
	}
}

func (a *App) navigate(ctx context.Context, text string) {
	if _, err := a.navigateUC.NavigateToURL(ctx, text); err != nil {
		if errors.Is(err, usecase.ErrNoActiveTab) {
			a.openTab(ctx, text)
			return
		}
		logging.FromContext(ctx).Debug().Err(err).Msg("navigation failed")
	}
}

// watchSettings applies edits made to the settings file while running.
// Bursts of file events collapse into one idle callback.
func (a *App) watchSettings(ctx context.Context) {
	log := logging.FromContext(ctx)

	a.settingsSync = mainloop.NewCoalescer[string](mainloop.IdlePost)
	err := a.deps.Store.Watch(ctx, func(next entity.Settings) {
		a.settingsSync.Post(settingsSyncKey, func() {
			a.bridge.ApplyExternal(ctx, next)
		})
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to start settings watcher")
		return
	}
	log.Debug().Str("path", a.deps.Store.Path()).Msg("settings watcher initialized")
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	a.cancel(errors.New("application shutdown"))
	if a.settingsSync != nil {
		a.settingsSync.Destroy()
	}
	if a.tabsUC != nil {
		a.tabsUC.CloseAll(ctx)
	}
	if a.profile != nil {
		log.Debug().Int("surfaces", a.profile.LiveSurfaces()).Msg("profile released")
	}

	log.Info().Msg("application shutdown complete")
}

// Quit stops the application. Safe from any goroutine.
func (a *App) Quit() {
	mainloop.IdlePost(func() {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}

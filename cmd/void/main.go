package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/cli"
	"github.com/void-browser/void/internal/cli/cmd"
	"github.com/void-browser/void/internal/domain/build"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/infrastructure/config"
	"github.com/void-browser/void/internal/infrastructure/filtering"
	"github.com/void-browser/void/internal/infrastructure/xdg"
	"github.com/void-browser/void/internal/logging"
	"github.com/void-browser/void/internal/ui"
	"github.com/void-browser/void/internal/ui/theme"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

const dirPerm = 0o755

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.SetGUIRunner(runGUI)

	os.Exit(cmd.Execute())
}

func runGUI(app *cli.App, initialURL string) int {
	runtime.LockOSThread()

	ctx := app.Context()
	log := logging.FromContext(ctx)
	logCoreDumpLimits(ctx)

	startup, err := prepareStartup(ctx, app, xdg.New())
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return 1
	}

	log.Info().
		Str("version", version).
		Str("settings", app.Store.Path()).
		Str("install_dir", startup.installDir).
		Msg("starting void")

	browser, err := ui.New(&ui.Dependencies{
		Ctx:        ctx,
		InitialURL: initialURL,
		Store:      app.Store,
		Settings:   startup.settings,
		InstallDir: startup.installDir,
		Paths:      startup.paths,
		Tracker:    filtering.NewTrackerFilter(startup.settings.Tracker),
		Theme:      theme.NewManager(theme.DefaultPalette()),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}

	setupSignalHandler(ctx, browser)
	return browser.Run()
}

type startupResult struct {
	settings   entity.Settings
	installDir string
	paths      port.XDGPaths
}

// prepareStartup creates the profile directories, loads the settings and
// locates the install directory concurrently.
func prepareStartup(ctx context.Context, app *cli.App, paths port.XDGPaths) (startupResult, error) {
	res := startupResult{paths: paths}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ensureProfileDirs(paths)
	})
	g.Go(func() error {
		res.settings = app.Store.Load(gctx)
		return nil
	})
	g.Go(func() error {
		dir, err := config.ResolveInstallDir()
		if err != nil {
			return fmt.Errorf("resolve install dir: %w", err)
		}
		res.installDir = dir
		return nil
	})

	if err := g.Wait(); err != nil {
		return startupResult{}, err
	}
	return res, nil
}

func ensureProfileDirs(paths port.XDGPaths) error {
	for _, get := range []func() (string, error){
		paths.ConfigDir,
		paths.ProfileDataDir,
		paths.ProfileCacheDir,
		paths.FilterStoreDir,
	} {
		dir, err := get()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}

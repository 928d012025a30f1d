// Package cli holds the state shared by the command line entry points.
package cli

import (
	"context"
	"fmt"

	"github.com/void-browser/void/internal/cli/styles"
	"github.com/void-browser/void/internal/domain/build"
	"github.com/void-browser/void/internal/infrastructure/config"
	"github.com/void-browser/void/internal/logging"
)

// Options are the global command line flags.
type Options struct {
	SettingsPath string
	LogLevel     string
	LogFormat    string
}

// App holds CLI dependencies.
type App struct {
	Theme     *styles.Theme
	BuildInfo build.Info
	Store     *config.SettingsStore

	// Context with logger
	ctx context.Context
}

// NewApp creates the logger and the settings store for opts.
// Flags win over VOID_LOG_LEVEL and VOID_LOG_FORMAT.
func NewApp(opts Options) (*App, error) {
	logCfg := logging.ConfigFromEnv(logging.DefaultConfig())
	logCfg.TimeFormat = "15:04:05"
	if opts.LogLevel != "" {
		logCfg.Level = logging.ParseLevel(opts.LogLevel)
	}
	switch opts.LogFormat {
	case "json", "console":
		logCfg.Format = opts.LogFormat
	case "":
	default:
		return nil, fmt.Errorf("unknown log format %q (want json or console)", opts.LogFormat)
	}
	ctx := logging.WithContext(context.Background(), logging.New(logCfg))

	store, err := config.NewSettingsStore(opts.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}

	return &App{
		Theme: styles.NewTheme(),
		Store: store,
		ctx:   ctx,
	}, nil
}

// Context returns the context carrying the CLI logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Package cmd provides Cobra CLI commands for void.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/void-browser/void/internal/cli"
	"github.com/void-browser/void/internal/domain/build"
)

// GUIRunner opens the browser window on initialURL and returns the exit code.
type GUIRunner func(app *cli.App, initialURL string) int

var (
	app       *cli.App
	buildInfo build.Info
	options   cli.Options
	runGUI    GUIRunner
	exitCode  int

	rootCmd = &cobra.Command{
		Use:   "void [url]",
		Short: "A minimal frameless web browser",
		Long: `Void - a frameless WebKitGTK browser with a tab sidebar.

Opens the given URL, or the configured homepage when none is given.
Settings live in a JSON file shared with the start page.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(options)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if runGUI == nil {
				return errors.New("browser window is not available in this build")
			}
			initialURL := ""
			if len(args) == 1 {
				initialURL = args[0]
			}
			exitCode = runGUI(app, initialURL)
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.SettingsPath, "settings", "", "settings file (default $XDG_CONFIG_HOME/void/settings.json)")
	flags.StringVar(&options.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&options.LogFormat, "log-format", "", "log format: console or json")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	exitCode = 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// SetGUIRunner sets the function the root command uses to open the window.
func SetGUIRunner(r GUIRunner) {
	runGUI = r
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/void-browser/void/internal/cli/styles"
	"github.com/void-browser/void/internal/infrastructure/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect the settings file",
	Long:  `Show the effective settings, where they are stored, or their JSON schema.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Long:  `Load the settings file, filling missing keys with defaults, and print every key.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPath,
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the settings file",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSchema,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsSchemaCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewSettingsRenderer(app.Theme)

	path := app.Store.Path()
	exists := true
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		exists = false
	}
	settings := app.Store.Load(app.Context())

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSettings(path, settings, exists))
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Store.Path())
	return nil
}

func runSettingsSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write(schema); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}

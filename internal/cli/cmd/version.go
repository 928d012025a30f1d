package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/void-browser/void/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		renderer := styles.NewVersionRenderer(app.Theme)
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Package cli implements the scratchpad CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/watchfire-io/scratchpad/internal/config"
	"github.com/watchfire-io/scratchpad/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "scratchpad",
	Short: "A terminal scratchpad for JavaScript",
	Long: `Scratchpad is a terminal editor for quick JavaScript experiments.
Type code, run it, and read the captured console output side by side.

Without a subcommand the interactive editor is launched.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// openState opens the persisted scratchpad state.
func openState() (*config.State, error) {
	return config.OpenState()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/scratchpad/internal/runner"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List saved console output",
	Args:  cobra.NoArgs,
	RunE:  runLogsList,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove saved console output",
	Args:  cobra.NoArgs,
	RunE:  runLogsClear,
}

func init() {
	logsCmd.AddCommand(logsClearCmd)
}

func runLogsList(cmd *cobra.Command, args []string) error {
	state, err := openState()
	if err != nil {
		return err
	}

	logs := state.LoadLogs()
	out := cmd.OutOrStdout()
	if len(logs) == 0 {
		fmt.Fprintln(out, "No console output. Run some code first.")
		return nil
	}

	styled := isTerminal(out)
	for _, entry := range logs {
		ts := entry.Timestamp.Local().Format("15:04:05")
		if styled {
			ts = styleLabel.Render(ts)
		}
		fmt.Fprintf(out, "%s %s\n", ts, formatRecord(runner.Record{Kind: entry.Type, Message: entry.Message}, styled))
	}
	return nil
}

func runLogsClear(cmd *cobra.Command, args []string) error {
	state, err := openState()
	if err != nil {
		return err
	}
	if err := state.ClearLogs(); err != nil {
		return fmt.Errorf("failed to clear console output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("Console output cleared."))
	return nil
}

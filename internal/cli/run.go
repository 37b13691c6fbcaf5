package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/scratchpad/internal/config"
	"github.com/watchfire-io/scratchpad/internal/log"
	"github.com/watchfire-io/scratchpad/internal/models"
	"github.com/watchfire-io/scratchpad/internal/runner"
	"github.com/watchfire-io/scratchpad/internal/watcher"
)

// errCodeThrew is returned by run --fail-on-error when the code threw.
var errCodeThrew = errors.New("code threw an error")

var (
	runWatch       bool
	runSave        bool
	runFailOnError bool
)

var runCmd = &cobra.Command{
	Use:   "run [file|-]",
	Short: "Run JavaScript and print its console output",
	Long: `Run JavaScript and print everything it logs through console.log,
console.error, console.warn and console.info.

Without arguments, runs the code saved by the editor.
With "-", reads the code from standard input.

A thrown error is reported as an error record; the command still
succeeds unless --fail-on-error is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&runWatch, "watch", "W", false, "Re-run whenever the file changes")
	runCmd.Flags().BoolVarP(&runSave, "save", "s", false, "Append the output to the saved console log")
	runCmd.Flags().BoolVar(&runFailOnError, "fail-on-error", false, "Exit with status 1 when the code throws")
}

func runRun(cmd *cobra.Command, args []string) error {
	state, err := openState()
	if err != nil {
		return err
	}

	src, err := readSource(cmd, args, state)
	if err != nil {
		return err
	}

	if runWatch {
		if src.Path == "" {
			return fmt.Errorf("--watch needs a file argument")
		}
		return watchAndRun(cmd, state, src.Path)
	}

	result := executeAndPrint(cmd.OutOrStdout(), state, src.Code)
	if runFailOnError && result.HasError() {
		return errCodeThrew
	}
	return nil
}

// executeAndPrint runs code, prints its records and optionally saves them.
func executeAndPrint(out io.Writer, state *config.State, code string) runner.Result {
	result := runner.Execute(code)
	printRecords(out, result.Records, isTerminal(out))

	if runSave && len(result.Records) > 0 {
		if err := state.AppendLogs(models.NewConsoleLogs(result, time.Now())); err != nil {
			log.GetLogger().Errorf("Failed to save console output: %v", err)
		}
	}
	return result
}

func printRecords(out io.Writer, records []runner.Record, styled bool) {
	for _, rec := range records {
		fmt.Fprintln(out, formatRecord(rec, styled))
	}
}

// formatRecord renders one record. Plain log records print bare so that
// piped output matches what the code logged.
func formatRecord(rec runner.Record, styled bool) string {
	if rec.Kind == runner.KindLog {
		return rec.Message
	}
	prefix := fmt.Sprintf("[%s]", rec.Kind)
	if styled {
		prefix = kindBadge(rec.Kind).Render(prefix)
	}
	return prefix + " " + rec.Message
}

func watchAndRun(cmd *cobra.Command, state *config.State, path string) error {
	w, err := watcher.New(path, watcher.DefaultDebounce)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	runFile := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(out, styleHint.Render(fmt.Sprintf("Cannot read %s: %v", path, err)))
			return
		}
		executeAndPrint(out, state, string(data))
	}

	runFile()
	fmt.Fprintln(out, styleHint.Render(fmt.Sprintf("Watching %s (Ctrl+C to stop)", path)))

	return watchLoop(ctx, w.Events(), func() {
		fmt.Fprintln(out, styleHint.Render(fmt.Sprintf("── %s changed, re-running ──", path)))
		runFile()
	})
}

// watchLoop calls onChange for every event until ctx is cancelled or the
// channel closes.
func watchLoop(ctx context.Context, events <-chan watcher.Event, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			onChange()
		}
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/scratchpad/internal/format"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file|-]",
	Short: "Normalize spacing in JavaScript source",
	Long: `Insert spaces around operators, after commas and semicolons, and
between control keywords and their parentheses.

Without arguments, formats the code saved by the editor.
With "-", reads the code from standard input.
With -w, writes the result back instead of printing it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write the result back to the source")
}

func runFmt(cmd *cobra.Command, args []string) error {
	state, err := openState()
	if err != nil {
		return err
	}

	src, err := readSource(cmd, args, state)
	if err != nil {
		return err
	}

	formatted := format.Format(src.Code)

	if !fmtWrite {
		fmt.Fprint(cmd.OutOrStdout(), formatted)
		return nil
	}

	switch {
	case src.Path != "":
		info, err := os.Stat(src.Path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", src.Path, err)
		}
		if formatted == src.Code {
			fmt.Fprintln(cmd.OutOrStdout(), styleHint.Render(src.Path+" already formatted."))
			return nil
		}
		if err := os.WriteFile(src.Path, []byte(formatted), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", src.Path, err)
		}
	case len(args) == 0:
		if err := state.SaveCode(formatted); err != nil {
			return fmt.Errorf("failed to save code: %w", err)
		}
	default:
		return fmt.Errorf("-w cannot be used with stdin")
	}

	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("Formatted "+src.From+"."))
	return nil
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/scratchpad/internal/config"
)

// stdinArg selects standard input as the source.
const stdinArg = "-"

// source is JavaScript read from a file, stdin, or the saved editor code.
type source struct {
	Code string
	Path string // empty for stdin and saved code
	From string // human-readable origin
}

// readSource resolves the optional positional argument of run and fmt.
func readSource(cmd *cobra.Command, args []string, state *config.State) (*source, error) {
	if len(args) == 0 {
		return &source{Code: state.LoadCode(), From: "saved code"}, nil
	}

	if args[0] == stdinArg {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return &source{Code: string(data), From: "stdin"}, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return &source{Code: string(data), Path: args[0], From: args[0]}, nil
}

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/watchfire-io/scratchpad/internal/runner"
)

// Adaptive colors matching the TUI palette.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleVersion = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
)

// Record kind badges.
var (
	badgeLog   = lipgloss.NewStyle().Foreground(colorDim)
	badgeError = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	badgeWarn  = lipgloss.NewStyle().Foreground(colorYellow)
	badgeInfo  = lipgloss.NewStyle().Foreground(colorCyan)
)

func kindBadge(kind runner.Kind) lipgloss.Style {
	switch kind {
	case runner.KindError:
		return badgeError
	case runner.KindWarn:
		return badgeWarn
	case runner.KindInfo:
		return badgeInfo
	default:
		return badgeLog
	}
}

// isTerminal reports whether w is an interactive terminal. Styled output
// is only produced for terminals so piped output stays plain.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/scratchpad/internal/models"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Settings form styles.
var (
	settingsLabelStyle = lipgloss.NewStyle().
				Width(14).
				Foreground(colorDim)

	settingsValueStyle = lipgloss.NewStyle().
				Foreground(colorWhite)

	settingsActionStyle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	settingsCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// palette is the set of colors a theme applies to the editor and console.
type palette struct {
	Text       lipgloss.TerminalColor
	Dim        lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Focus      lipgloss.TerminalColor
	CursorLine lipgloss.TerminalColor
	Log        lipgloss.TerminalColor
	Error      lipgloss.TerminalColor
	Warn       lipgloss.TerminalColor
	Info       lipgloss.TerminalColor
	Bold       bool
}

var palettes = map[string]palette{
	models.ThemeGitHub: {
		Text:       lipgloss.Color("236"),
		Dim:        lipgloss.Color("245"),
		Border:     lipgloss.Color("250"),
		Focus:      lipgloss.Color("25"),
		CursorLine: lipgloss.Color("255"),
		Log:        lipgloss.Color("238"),
		Error:      lipgloss.Color("160"),
		Warn:       lipgloss.Color("130"),
		Info:       lipgloss.Color("25"),
	},
	models.ThemeDark: {
		Text:       lipgloss.Color("252"),
		Dim:        lipgloss.Color("242"),
		Border:     lipgloss.Color("238"),
		Focus:      lipgloss.Color("75"),
		CursorLine: lipgloss.Color("236"),
		Log:        lipgloss.Color("250"),
		Error:      lipgloss.Color("203"),
		Warn:       lipgloss.Color("221"),
		Info:       lipgloss.Color("111"),
	},
	models.ThemeLight: {
		Text:       lipgloss.Color("0"),
		Dim:        lipgloss.Color("244"),
		Border:     lipgloss.Color("252"),
		Focus:      lipgloss.Color("33"),
		CursorLine: lipgloss.Color("254"),
		Log:        lipgloss.Color("235"),
		Error:      lipgloss.Color("124"),
		Warn:       lipgloss.Color("94"),
		Info:       lipgloss.Color("26"),
	},
	models.ThemeHighDark: {
		Text:       lipgloss.Color("15"),
		Dim:        lipgloss.Color("250"),
		Border:     lipgloss.Color("15"),
		Focus:      lipgloss.Color("11"),
		CursorLine: lipgloss.Color("0"),
		Log:        lipgloss.Color("15"),
		Error:      lipgloss.Color("9"),
		Warn:       lipgloss.Color("11"),
		Info:       lipgloss.Color("14"),
		Bold:       true,
	},
	models.ThemeHighLight: {
		Text:       lipgloss.Color("0"),
		Dim:        lipgloss.Color("238"),
		Border:     lipgloss.Color("0"),
		Focus:      lipgloss.Color("4"),
		CursorLine: lipgloss.Color("15"),
		Log:        lipgloss.Color("0"),
		Error:      lipgloss.Color("1"),
		Warn:       lipgloss.Color("130"),
		Info:       lipgloss.Color("4"),
		Bold:       true,
	},
}

// paletteFor returns the palette of theme, falling back to the dark theme.
func paletteFor(theme string) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[models.ThemeDark]
}

func (p palette) borderStyle(focused bool) lipgloss.Style {
	color := p.Border
	if focused {
		color = p.Focus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

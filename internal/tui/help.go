package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+r / F5", "Run code"},
			{"Ctrl+l", "Clear console"},
			{"Ctrl+f", "Format code"},
			{"Ctrl+o", "Settings"},
			{"F1 / Ctrl+g", "Toggle help"},
			{"Ctrl+q", "Quit"},
		},
	},
	{
		title: "Editor",
		keys: []helpKey{
			{"(type)", "Edit code"},
			{"Tab", "Indent"},
			{"Esc", "Focus console"},
		},
	},
	{
		title: "Console",
		keys: []helpKey{
			{"j/k ↑/↓", "Scroll"},
			{"PgUp/PgDn", "Scroll half page"},
			{"g / G", "Oldest / newest"},
			{"Tab / i", "Focus editor"},
		},
	},
	{
		title: "Settings",
		keys: []helpKey{
			{"↑/↓", "Select field"},
			{"←/→", "Change theme or font size"},
			{"Enter", "Apply action"},
			{"Esc", "Close"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or F1 to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/scratchpad/internal/models"
)

func renderHeader(prefs *models.Preferences, focusedPanel, logCount int, running bool, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorYellow).Render("●")
	if running {
		dot = lipgloss.NewStyle().Foreground(colorGreen).Render("●")
	}
	name := lipgloss.NewStyle().Bold(true).Render("Scratchpad")

	tabs := renderTabs([]string{"Editor", fmt.Sprintf("Console (%d)", logCount)}, focusedPanel)

	left := fmt.Sprintf(" %s %s  %s", dot, name, tabs)
	right := lipgloss.NewStyle().Foreground(colorDim).
		Render(fmt.Sprintf("%s · %dpx ", models.ThemeLabel(prefs.Theme), prefs.FontSize))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}

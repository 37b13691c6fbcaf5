package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	left := " " + getKeyHints(m)

	var right string
	switch {
	case m.running:
		right = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Render("Running…") + " "
	case m.notice != "":
		right = lipgloss.NewStyle().Foreground(colorGreen).Render(m.notice) + " "
	case m.lastRun > 0:
		right = lipgloss.NewStyle().Foreground(colorDim).Render("Ran in "+formatDuration(m.lastRun)) + " "
	}
	if m.focusedPanel == panelEditor {
		line, col := m.editor.Cursor()
		right = lipgloss.NewStyle().Foreground(colorDim).Render(fmt.Sprintf("Ln %d, Col %d  ", line, col)) + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	switch m.activeOverlay {
	case overlaySettings:
		return keyHint("↑/↓", "select") + "  " + keyHint("←/→", "change") + "  " +
			keyHint("Enter", "apply") + "  " + keyHint("Esc", "close")
	case overlayHelp:
		return keyHint("Esc", "close")
	}

	base := keyHint("Ctrl+r", "run") + "  " + keyHint("Ctrl+l", "clear") + "  " +
		keyHint("Ctrl+f", "format") + "  " + keyHint("Ctrl+o", "settings") + "  " +
		keyHint("F1", "help") + "  " + keyHint("Ctrl+q", "quit")

	if m.focusedPanel == panelConsole {
		return base + "  " + keyHint("j/k", "scroll") + "  " + keyHint("Tab", "editor")
	}
	return base + "  " + keyHint("Esc", "console")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel indices.
const (
	panelEditor  = 0
	panelConsole = 1
)

// Split bounds for dragging the divider.
const (
	defaultSplitRatio = 0.7
	minSplitRatio     = 0.2
	maxSplitRatio     = 0.8
)

// minPanelWidth keeps both panels usable on narrow terminals.
const minPanelWidth = 10

// panelLayout holds computed dimensions for the two-panel layout.
type panelLayout struct {
	leftWidth     int
	rightWidth    int
	contentHeight int
	dividerCol    int // x position of the divider for mouse hit testing
}

func computeLayout(width, height int, splitRatio float64) panelLayout {
	// One row each for the header and the status bar.
	contentHeight := max(1, height-2)

	usable := width - 1 // divider column
	leftWidth := max(minPanelWidth, int(float64(usable)*splitRatio))
	rightWidth := max(minPanelWidth, usable-leftWidth)

	return panelLayout{
		leftWidth:     leftWidth,
		rightWidth:    rightWidth,
		contentHeight: contentHeight,
		dividerCol:    leftWidth,
	}
}

// inner returns the content size of each panel inside its border.
func (l panelLayout) inner() (left, right, height int) {
	return max(1, l.leftWidth-2), max(1, l.rightWidth-2), max(1, l.contentHeight-2)
}

// clampSplit keeps a dragged ratio within bounds.
func clampSplit(ratio float64) float64 {
	return min(maxSplitRatio, max(minSplitRatio, ratio))
}

func renderPanels(editorView, consoleView string, layout panelLayout, focusedPanel int, p palette) string {
	leftInner, rightInner, innerHeight := layout.inner()

	left := p.borderStyle(focusedPanel == panelEditor).
		Width(leftInner).
		Height(innerHeight).
		Render(fitContent(editorView, leftInner, innerHeight))

	right := p.borderStyle(focusedPanel == panelConsole).
		Width(rightInner).
		Height(innerHeight).
		Render(fitContent(consoleView, rightInner, innerHeight))

	rows := lipgloss.Height(left)
	divider := lipgloss.NewStyle().
		Foreground(p.Border).
		Render(strings.TrimSuffix(strings.Repeat("│\n", rows), "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, divider, right)
}

// fitContent clips content to width columns and height rows.
func fitContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}

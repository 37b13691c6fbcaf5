package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayKind identifies the dialog drawn over the panels.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHelp
	overlaySettings
)

const ansiReset = "\033[0m"

// renderOverlay centers box over a dimmed copy of base.
func renderOverlay(base, box string, width, height int) string {
	rows := strings.Split(base, "\n")
	for i, row := range rows {
		rows[i] = overlayDimStyle.Render(ansi.Strip(row))
	}

	boxRows := strings.Split(box, "\n")
	top := max(1, (height-len(boxRows))/2)
	left := max(1, (width-lipgloss.Width(box))/2)

	for i, boxRow := range boxRows {
		y := top + i
		if y >= len(rows) {
			break
		}
		rows[y] = spliceRow(rows[y], boxRow, left)
	}
	return strings.Join(rows, "\n")
}

// spliceRow replaces the cells of row starting at column x with insert.
func spliceRow(row, insert string, x int) string {
	rowWidth := lipgloss.Width(row)
	end := x + lipgloss.Width(insert)

	var b strings.Builder
	b.WriteString(ansi.Truncate(row, x, ""))
	if pad := x - rowWidth; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(ansiReset)
	b.WriteString(insert)
	b.WriteString(ansiReset)
	if end < rowWidth {
		b.WriteString(ansi.Cut(row, end, rowWidth))
	}
	return b.String()
}

package tui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/scratchpad/internal/models"
	"github.com/watchfire-io/scratchpad/internal/runner"
)

// Console displays captured log entries, newest at the bottom.
type Console struct {
	logs     []*models.ConsoleLog
	viewport viewport.Model
	palette  palette
	width    int
	height   int
}

// NewConsole creates an empty console.
func NewConsole() *Console {
	return &Console{
		viewport: viewport.New(40, 10),
		palette:  paletteFor(models.ThemeDark),
	}
}

// SetSize updates dimensions.
func (c *Console) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.Width = width
	c.viewport.Height = height
	c.refresh(c.viewport.AtBottom())
}

// SetPalette applies theme colors.
func (c *Console) SetPalette(p palette) {
	c.palette = p
	c.refresh(c.viewport.AtBottom())
}

// SetLogs replaces the entries and scrolls to the newest one.
func (c *Console) SetLogs(logs []*models.ConsoleLog) {
	c.logs = logs
	c.refresh(true)
}

// Len returns the number of entries.
func (c *Console) Len() int {
	return len(c.logs)
}

// ScrollUp scrolls the console up by n lines.
func (c *Console) ScrollUp(n int) {
	c.viewport.ScrollUp(n)
}

// ScrollDown scrolls the console down by n lines.
func (c *Console) ScrollDown(n int) {
	c.viewport.ScrollDown(n)
}

// PageUp scrolls up half a page.
func (c *Console) PageUp() {
	c.viewport.HalfViewUp()
}

// PageDown scrolls down half a page.
func (c *Console) PageDown() {
	c.viewport.HalfViewDown()
}

// GotoTop scrolls to the oldest entry.
func (c *Console) GotoTop() {
	c.viewport.GotoTop()
}

// GotoBottom scrolls to the newest entry.
func (c *Console) GotoBottom() {
	c.viewport.GotoBottom()
}

func (c *Console) refresh(stickToBottom bool) {
	c.viewport.SetContent(c.render())
	if stickToBottom {
		c.viewport.GotoBottom()
	}
}

func (c *Console) render() string {
	if len(c.logs) == 0 {
		return ""
	}
	width := c.width
	if width < 10 {
		width = 10
	}

	blocks := make([]string, 0, len(c.logs))
	for _, entry := range c.logs {
		blocks = append(blocks, c.renderEntry(entry, width))
	}
	return strings.Join(blocks, "\n")
}

func (c *Console) renderEntry(entry *models.ConsoleLog, width int) string {
	stamp := lipgloss.NewStyle().Foreground(c.palette.Dim).
		Render(entry.Timestamp.Local().Format("15:04:05"))
	marker := c.kindStyle(entry.Type).Render(kindMarker(entry.Type))
	prefix := stamp + " " + marker + " "

	bodyWidth := width - lipgloss.Width(prefix)
	if bodyWidth < 1 {
		bodyWidth = 1
	}
	body := c.kindStyle(entry.Type).Width(bodyWidth).Render(displayMessage(entry.Message))
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, body)
}

func (c *Console) kindStyle(kind runner.Kind) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(c.palette.Bold)
	switch kind {
	case runner.KindError:
		return style.Foreground(c.palette.Error)
	case runner.KindWarn:
		return style.Foreground(c.palette.Warn)
	case runner.KindInfo:
		return style.Foreground(c.palette.Info)
	default:
		return style.Foreground(c.palette.Log)
	}
}

func kindMarker(kind runner.Kind) string {
	switch kind {
	case runner.KindError:
		return "✖"
	case runner.KindWarn:
		return "▲"
	case runner.KindInfo:
		return "ℹ"
	default:
		return "›"
	}
}

// displayMessage re-indents messages that are valid JSON documents.
func displayMessage(message string) string {
	if !json.Valid([]byte(message)) {
		return message
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(message), "", "  "); err != nil {
		return message
	}
	return buf.String()
}

// View renders the console.
func (c *Console) View() string {
	if len(c.logs) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Width(c.width).Align(lipgloss.Center).
			Render("\nNo output yet.\nPress Ctrl+r to run your code.")
	}
	return c.viewport.View()
}

package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// indentUnit is inserted when Tab is pressed in the editor.
const indentUnit = "  "

// Editor is the code editing surface.
type Editor struct {
	area   textarea.Model
	width  int
	height int
}

// NewEditor creates an editor holding code.
func NewEditor(code string) *Editor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = " "
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "// Write JavaScript here"
	ta.SetValue(code)
	ta.Focus()

	return &Editor{area: ta}
}

// SetSize updates dimensions.
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.area.SetWidth(width)
	e.area.SetHeight(height)
}

// SetPalette applies theme colors.
func (e *Editor) SetPalette(p palette) {
	text := lipgloss.NewStyle().Foreground(p.Text).Bold(p.Bold)
	focused := textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       text.Background(p.CursorLine),
		CursorLineNumber: lipgloss.NewStyle().Foreground(p.Focus).Background(p.CursorLine),
		EndOfBuffer:      lipgloss.NewStyle().Foreground(p.Dim),
		LineNumber:       lipgloss.NewStyle().Foreground(p.Dim),
		Placeholder:      lipgloss.NewStyle().Foreground(p.Dim),
		Prompt:           lipgloss.NewStyle().Foreground(p.Dim),
		Text:             text,
	}
	blurred := focused
	blurred.CursorLine = text
	blurred.CursorLineNumber = lipgloss.NewStyle().Foreground(p.Dim)

	e.area.FocusedStyle = focused
	e.area.BlurredStyle = blurred
}

// Value returns the editor text.
func (e *Editor) Value() string {
	return e.area.Value()
}

// SetValue replaces the editor text, keeping the cursor on the same line
// where possible.
func (e *Editor) SetValue(code string) {
	line := e.area.Line()
	e.area.SetValue(code)
	for e.area.Line() > line {
		e.area.CursorUp()
	}
}

// Indent inserts one indent unit at the cursor.
func (e *Editor) Indent() {
	e.area.InsertString(indentUnit)
}

// Focus gives keyboard focus to the editor.
func (e *Editor) Focus() tea.Cmd {
	return e.area.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.area.Blur()
}

// Focused reports whether the editor has focus.
func (e *Editor) Focused() bool {
	return e.area.Focused()
}

// Cursor returns the 1-based line and column of the cursor.
func (e *Editor) Cursor() (line, col int) {
	info := e.area.LineInfo()
	return e.area.Line() + 1, info.StartColumn + info.ColumnOffset + 1
}

// LineCount returns the number of lines.
func (e *Editor) LineCount() int {
	return e.area.LineCount()
}

// Update forwards a message to the textarea.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return cmd
}

// View renders the editor.
func (e *Editor) View() string {
	return e.area.View()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/scratchpad/internal/models"
)

// FieldType defines the type of a settings field.
type FieldType int

const (
	fieldSelect FieldType = iota
	fieldRange
	fieldAction
)

// settingsAction is what the model must do after a settings key press.
type settingsAction int

const (
	settingsNone settingsAction = iota
	settingsThemeChanged
	settingsFontSizeChanged
	settingsFormat
	settingsClear
)

// SettingsField is a single row in the settings overlay.
type SettingsField struct {
	Label  string
	Type   FieldType
	Action settingsAction
}

var settingsFields = []SettingsField{
	{Label: "Editor Theme", Type: fieldSelect, Action: settingsThemeChanged},
	{Label: "Font Size", Type: fieldRange, Action: settingsFontSizeChanged},
	{Label: "Format Code", Type: fieldAction, Action: settingsFormat},
	{Label: "Clear Console", Type: fieldAction, Action: settingsClear},
}

// SettingsForm manages the settings overlay.
type SettingsForm struct {
	themes   []models.ThemeOption
	theme    int
	fontSize int
	cursor   int
	width    int
}

// NewSettingsForm creates a new settings form.
func NewSettingsForm() *SettingsForm {
	return &SettingsForm{
		themes:   models.Themes(),
		fontSize: models.DefaultFontSize,
	}
}

// Load populates the form from preferences.
func (s *SettingsForm) Load(prefs *models.Preferences) {
	s.theme = 0
	if i := models.ThemeIndex(prefs.Theme); i >= 0 {
		s.theme = i
	}
	s.fontSize = prefs.FontSize
}

// SetWidth updates the overlay width.
func (s *SettingsForm) SetWidth(width int) {
	s.width = width
}

// Theme returns the selected theme identifier.
func (s *SettingsForm) Theme() string {
	return s.themes[s.theme].Value
}

// FontSize returns the selected font size.
func (s *SettingsForm) FontSize() int {
	return s.fontSize
}

// Cursor returns the index of the highlighted field.
func (s *SettingsForm) Cursor() int {
	return s.cursor
}

// MoveUp moves cursor up.
func (s *SettingsForm) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves cursor down.
func (s *SettingsForm) MoveDown() {
	if s.cursor < len(settingsFields)-1 {
		s.cursor++
	}
}

// Left decrements the highlighted value.
func (s *SettingsForm) Left() settingsAction {
	return s.step(-1)
}

// Right increments the highlighted value.
func (s *SettingsForm) Right() settingsAction {
	return s.step(1)
}

func (s *SettingsForm) step(delta int) settingsAction {
	f := settingsFields[s.cursor]
	switch f.Type {
	case fieldSelect:
		s.theme = (s.theme + delta + len(s.themes)) % len(s.themes)
		return f.Action
	case fieldRange:
		next := s.fontSize + delta
		if !models.IsValidFontSize(next) {
			return settingsNone
		}
		s.fontSize = next
		return f.Action
	}
	return settingsNone
}

// Enter activates the highlighted field. Select fields advance to the next option.
func (s *SettingsForm) Enter() settingsAction {
	f := settingsFields[s.cursor]
	switch f.Type {
	case fieldAction:
		return f.Action
	case fieldSelect:
		return s.step(1)
	}
	return settingsNone
}

// View renders the settings overlay.
func (s *SettingsForm) View() string {
	formWidth := s.width
	if formWidth > 56 {
		formWidth = 56
	}
	if formWidth < 36 {
		formWidth = 36
	}
	inner := formWidth - 6

	parts := make([]string, 0, len(settingsFields)+4)
	parts = append(parts, overlayTitleStyle.Render("Settings"))

	for i, f := range settingsFields {
		var line string
		switch f.Type {
		case fieldSelect:
			line = settingsLabelStyle.Render(f.Label+":") + " " +
				settingsValueStyle.Render("‹ "+s.themes[s.theme].Label+" ›")
		case fieldRange:
			line = settingsLabelStyle.Render(f.Label+":") + " " +
				settingsValueStyle.Render(fmt.Sprintf("%dpx ", s.fontSize)) +
				renderSlider(s.fontSize, models.MinFontSize, models.MaxFontSize, inner-24)
		case fieldAction:
			line = settingsActionStyle.Render("[ " + f.Label + " ]")
		}
		if i == s.cursor {
			line = settingsCursorStyle.Width(inner).Render(line)
		}
		parts = append(parts, line)
	}

	footer := lipgloss.NewStyle().Foreground(colorDim).Render("↑/↓ select  |  ←/→ change  |  Enter apply  |  Esc close")
	parts = append(parts, "", footer)

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}

// renderSlider draws value within [lo, hi] as a bar of the given width.
func renderSlider(value, lo, hi, width int) string {
	if width < 4 {
		width = 4
	}
	pos := (value - lo) * (width - 1) / (hi - lo)
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i == pos {
			b.WriteString("●")
		} else {
			b.WriteString("─")
		}
	}
	return lipgloss.NewStyle().Foreground(colorCyan).Render(b.String())
}

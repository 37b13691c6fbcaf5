package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/watchfire-io/scratchpad/internal/models"
	"github.com/watchfire-io/scratchpad/internal/runner"
)

func TestComputeLayout(t *testing.T) {
	layout := computeLayout(101, 40, defaultSplitRatio)
	assert.Equal(t, 70, layout.leftWidth)
	assert.Equal(t, 30, layout.rightWidth)
	assert.Equal(t, 38, layout.contentHeight)
	assert.Equal(t, 70, layout.dividerCol)

	tiny := computeLayout(12, 1, defaultSplitRatio)
	assert.Equal(t, 10, tiny.leftWidth)
	assert.Equal(t, 10, tiny.rightWidth)
	assert.Equal(t, 1, tiny.contentHeight)
}

func TestClampSplit(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"below minimum", 0.05, minSplitRatio},
		{"above maximum", 0.95, maxSplitRatio},
		{"within bounds", 0.5, 0.5},
		{"at minimum", minSplitRatio, minSplitRatio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampSplit(tt.ratio))
		})
	}
}

func TestSettingsFormTheme(t *testing.T) {
	form := NewSettingsForm()
	form.Load(&models.Preferences{Theme: models.ThemeGitHub, FontSize: 15})
	assert.Equal(t, models.ThemeGitHub, form.Theme())

	// Wraps backwards to the last option.
	assert.Equal(t, settingsThemeChanged, form.Left())
	assert.Equal(t, models.ThemeHighLight, form.Theme())

	assert.Equal(t, settingsThemeChanged, form.Right())
	assert.Equal(t, models.ThemeGitHub, form.Theme())

	// Enter on a select advances it.
	assert.Equal(t, settingsThemeChanged, form.Enter())
	assert.Equal(t, models.ThemeDark, form.Theme())

	// Unknown theme selects the first option.
	form.Load(&models.Preferences{Theme: "solarized", FontSize: 15})
	assert.Equal(t, models.ThemeGitHub, form.Theme())
}

func TestSettingsFormFontSize(t *testing.T) {
	form := NewSettingsForm()
	form.Load(&models.Preferences{Theme: models.ThemeDark, FontSize: models.MaxFontSize})
	form.MoveDown()
	assert.Equal(t, 1, form.Cursor())

	assert.Equal(t, settingsNone, form.Right())
	assert.Equal(t, models.MaxFontSize, form.FontSize())

	assert.Equal(t, settingsFontSizeChanged, form.Left())
	assert.Equal(t, models.MaxFontSize-1, form.FontSize())

	form.Load(&models.Preferences{Theme: models.ThemeDark, FontSize: models.MinFontSize})
	assert.Equal(t, settingsNone, form.Left())
	assert.Equal(t, models.MinFontSize, form.FontSize())

	// Enter on a range does nothing.
	assert.Equal(t, settingsNone, form.Enter())
}

func TestSettingsFormCursorBounds(t *testing.T) {
	form := NewSettingsForm()
	form.MoveUp()
	assert.Equal(t, 0, form.Cursor())

	for i := 0; i < 10; i++ {
		form.MoveDown()
	}
	assert.Equal(t, len(settingsFields)-1, form.Cursor())
	assert.Equal(t, settingsClear, form.Enter())
	assert.Equal(t, settingsNone, form.Left())

	form.MoveUp()
	assert.Equal(t, settingsFormat, form.Enter())
}

func TestSettingsFormView(t *testing.T) {
	form := NewSettingsForm()
	form.SetWidth(80)
	form.Load(&models.Preferences{Theme: models.ThemeHighDark, FontSize: 18})

	view := form.View()
	assert.Contains(t, view, "Editor Theme")
	assert.Contains(t, view, "High Contrast Dark")
	assert.Contains(t, view, "18")
	assert.Contains(t, view, "Clear Console")
}

func TestDisplayMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"plain text", "hello world", "hello world"},
		{"number", "42", "42"},
		{"compact object", `{"a":1,"b":[1,2]}`, "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2\n  ]\n}"},
		{"already indented", "{\n  \"a\": 1\n}", "{\n  \"a\": 1\n}"},
		{"broken json", `{"a":`, `{"a":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayMessage(tt.message))
		})
	}
}

func TestConsoleRendersEntries(t *testing.T) {
	c := NewConsole()
	c.SetSize(60, 10)
	assert.Contains(t, c.View(), "No output yet.")

	logs := []*models.ConsoleLog{
		{ID: "1", Type: runner.KindLog, Message: "first", Timestamp: time.Now()},
		{ID: "2", Type: runner.KindError, Message: "broken", Timestamp: time.Now()},
	}
	c.SetLogs(logs)
	assert.Equal(t, 2, c.Len())

	view := c.View()
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "broken")
	assert.Contains(t, view, kindMarker(runner.KindError))
}

func TestKindMarkersDistinct(t *testing.T) {
	seen := map[string]runner.Kind{}
	for _, kind := range runner.Kinds {
		marker := kindMarker(kind)
		if other, ok := seen[marker]; ok {
			t.Errorf("kinds %s and %s share marker %q", kind, other, marker)
		}
		seen[marker] = kind
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250µs", formatDuration(250*time.Microsecond))
	assert.Equal(t, "12ms", formatDuration(12*time.Millisecond))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
}

func TestEditorIndentAndCursor(t *testing.T) {
	e := NewEditor("")
	e.SetSize(40, 10)
	e.Indent()
	assert.Equal(t, "  ", e.Value())

	line, col := e.Cursor()
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, col)

	e.SetValue("a\nb\nc")
	assert.Equal(t, 3, e.LineCount())
}

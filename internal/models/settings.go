package models

// Font size bounds offered by the settings overlay.
const (
	MinFontSize     = 10
	MaxFontSize     = 24
	DefaultFontSize = 15
)

// Theme identifiers.
const (
	ThemeGitHub    = "github"
	ThemeDark      = "vs-dark"
	ThemeLight     = "vs-light"
	ThemeHighDark  = "hc-black"
	ThemeHighLight = "hc-light"
)

// ThemeOption is one selectable editor theme.
type ThemeOption struct {
	Value string
	Label string
}

var themeOptions = []ThemeOption{
	{Value: ThemeGitHub, Label: "GitHub Light"},
	{Value: ThemeDark, Label: "Dark (System)"},
	{Value: ThemeLight, Label: "Light"},
	{Value: ThemeHighDark, Label: "High Contrast Dark"},
	{Value: ThemeHighLight, Label: "High Contrast Light"},
}

// Themes returns the closed set of themes in display order.
func Themes() []ThemeOption {
	out := make([]ThemeOption, len(themeOptions))
	copy(out, themeOptions)
	return out
}

// IsValidTheme reports whether theme is one of Themes().
func IsValidTheme(theme string) bool {
	return ThemeIndex(theme) >= 0
}

// ThemeIndex returns the position of theme in Themes(), or -1.
func ThemeIndex(theme string) int {
	for i, t := range themeOptions {
		if t.Value == theme {
			return i
		}
	}
	return -1
}

// ThemeLabel returns the display label for theme, or the raw value if unknown.
func ThemeLabel(theme string) string {
	if i := ThemeIndex(theme); i >= 0 {
		return themeOptions[i].Label
	}
	return theme
}

// IsValidFontSize reports whether size is within [MinFontSize, MaxFontSize].
func IsValidFontSize(size int) bool {
	return size >= MinFontSize && size <= MaxFontSize
}

// Preferences holds the user's appearance choices.
type Preferences struct {
	Theme    string `yaml:"theme"`
	FontSize int    `yaml:"font_size"`
}

// NewPreferences creates preferences with default values. The default theme
// follows the terminal background.
func NewPreferences(darkBackground bool) *Preferences {
	theme := ThemeGitHub
	if darkBackground {
		theme = ThemeDark
	}
	return &Preferences{
		Theme:    theme,
		FontSize: DefaultFontSize,
	}
}

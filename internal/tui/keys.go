package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active outside overlays.
type GlobalKeys struct {
	Quit     key.Binding
	Help     key.Binding
	Run      key.Binding
	Clear    key.Binding
	Format   key.Binding
	Settings key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "ctrl+c"),
		key.WithHelp("Ctrl+q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1", "ctrl+g"),
		key.WithHelp("F1", "help"),
	),
	Run: key.NewBinding(
		key.WithKeys("ctrl+r", "f5"),
		key.WithHelp("Ctrl+r", "run"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("Ctrl+l", "clear console"),
	),
	Format: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("Ctrl+f", "format"),
	),
	Settings: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("Ctrl+o", "settings"),
	),
}

// EditorKeys are active when the editor is focused.
type EditorKeys struct {
	Indent key.Binding
	Leave  key.Binding
}

var editorKeys = EditorKeys{
	Indent: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "indent"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "focus console"),
	),
}

// ConsoleKeys are active when the console is focused.
type ConsoleKeys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Edit     key.Binding
}

var consoleKeys = ConsoleKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "scroll"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "scroll"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
	),
	Edit: key.NewBinding(
		key.WithKeys("tab", "esc", "i", "enter"),
		key.WithHelp("Tab", "focus editor"),
	),
}

// SettingsKeys are active when the settings overlay is open.
type SettingsKeys struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Cancel key.Binding
}

var settingsKeys = SettingsKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "shift+tab"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("j/k", "navigate"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←/→", "change"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "+", "="),
		key.WithHelp("←/→", "change"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+o"),
		key.WithHelp("Esc", "close"),
	),
}

// OverlayKeys close the help overlay.
type OverlayKeys struct {
	Cancel key.Binding
}

var overlayKeys = OverlayKeys{
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("Esc", "close"),
	),
}

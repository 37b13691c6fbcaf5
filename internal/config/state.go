package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/watchfire-io/scratchpad/internal/log"
	"github.com/watchfire-io/scratchpad/internal/models"
)

// Storage keys.
const (
	KeyCode     = "live-editor-code"
	KeyLogs     = "live-editor-logs"
	KeyTheme    = "live-editor-theme"
	KeyFontSize = "live-editor-fontsize"
)

// State gives typed access to the four persisted scratchpad values.
type State struct {
	kv KeyValue
}

// NewState wraps kv.
func NewState(kv KeyValue) *State {
	return &State{kv: kv}
}

// LoadCode returns the saved editor text, or models.DefaultCode.
func (s *State) LoadCode() string {
	if code, ok := s.kv.Get(KeyCode); ok && code != "" {
		return code
	}
	return models.DefaultCode
}

// SaveCode persists the editor text. The default program is never saved.
func (s *State) SaveCode(code string) error {
	if code == models.DefaultCode {
		return nil
	}
	if err := s.kv.Set(KeyCode, code); err != nil {
		return fmt.Errorf("failed to save code: %w", err)
	}
	return nil
}

// LoadLogs returns the saved console entries. Corrupt data is logged and discarded.
func (s *State) LoadLogs() []*models.ConsoleLog {
	raw, ok := s.kv.Get(KeyLogs)
	if !ok || raw == "" {
		return nil
	}
	var logs []*models.ConsoleLog
	if err := yaml.Unmarshal([]byte(raw), &logs); err != nil {
		log.GetLogger().Errorf("Failed to parse saved logs: %v", err)
		return nil
	}

	valid := logs[:0]
	for _, l := range logs {
		if l == nil || !l.Type.IsValid() {
			continue
		}
		valid = append(valid, l)
	}
	return valid
}

// SaveLogs persists the console entries. An empty slice is not written;
// use ClearLogs to drop saved entries.
func (s *State) SaveLogs(logs []*models.ConsoleLog) error {
	if len(logs) == 0 {
		return nil
	}
	data, err := yaml.Marshal(logs)
	if err != nil {
		return fmt.Errorf("failed to marshal logs: %w", err)
	}
	if err := s.kv.Set(KeyLogs, string(data)); err != nil {
		return fmt.Errorf("failed to save logs: %w", err)
	}
	return nil
}

// AppendLogs adds entries after the saved ones.
func (s *State) AppendLogs(logs []*models.ConsoleLog) error {
	if len(logs) == 0 {
		return nil
	}
	return s.SaveLogs(append(s.LoadLogs(), logs...))
}

// ClearLogs removes saved console entries.
func (s *State) ClearLogs() error {
	if err := s.kv.Remove(KeyLogs); err != nil {
		return fmt.Errorf("failed to clear logs: %w", err)
	}
	return nil
}

// LoadPreferences returns the saved theme and font size. Missing, unknown
// or out-of-range values fall back to defaults.
func (s *State) LoadPreferences(darkBackground bool) *models.Preferences {
	prefs := models.NewPreferences(darkBackground)

	if theme, ok := s.kv.Get(KeyTheme); ok {
		if models.IsValidTheme(theme) {
			prefs.Theme = theme
		} else {
			log.GetLogger().Warnf("Ignoring unknown saved theme %q", theme)
		}
	}

	if raw, ok := s.kv.Get(KeyFontSize); ok {
		size, err := strconv.Atoi(raw)
		if err == nil && models.IsValidFontSize(size) {
			prefs.FontSize = size
		} else {
			log.GetLogger().Warnf("Ignoring invalid saved font size %q", raw)
		}
	}

	return prefs
}

// SaveTheme persists the theme after validating it.
func (s *State) SaveTheme(theme string) error {
	if !models.IsValidTheme(theme) {
		return fmt.Errorf("unknown theme: %s", theme)
	}
	if err := s.kv.Set(KeyTheme, theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// SaveFontSize persists the font size after validating it.
func (s *State) SaveFontSize(size int) error {
	if !models.IsValidFontSize(size) {
		return fmt.Errorf("font size %d out of range (%d-%d)", size, models.MinFontSize, models.MaxFontSize)
	}
	if err := s.kv.Set(KeyFontSize, strconv.Itoa(size)); err != nil {
		return fmt.Errorf("failed to save font size: %w", err)
	}
	return nil
}

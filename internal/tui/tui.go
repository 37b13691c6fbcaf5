// Package tui implements the interactive scratchpad: a code editor, a
// console for captured output, and a settings overlay.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/scratchpad/internal/config"
	"github.com/watchfire-io/scratchpad/internal/log"
)

// Run launches the TUI backed by the default store.
func Run() error {
	state, err := config.OpenState()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	if path, err := config.AppLogFile(); err == nil {
		if err := log.ToFile(path); err != nil {
			log.Discard()
		}
		defer log.Close()
	}
	log.GetLogger().Info("Starting scratchpad TUI")

	model := NewModel(state, lipgloss.HasDarkBackground())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

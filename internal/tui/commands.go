package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/scratchpad/internal/log"
	"github.com/watchfire-io/scratchpad/internal/models"
	"github.com/watchfire-io/scratchpad/internal/runner"
)

// codeSaveDelay is how long the editor must be idle before its text is persisted.
const codeSaveDelay = 500 * time.Millisecond

// runCodeCmd executes code off the UI goroutine. Code that never
// terminates keeps this goroutine busy; the UI stays responsive.
func runCodeCmd(code string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result := runner.Execute(code)
		elapsed := time.Since(start)
		log.GetLogger().Debugf("Executed %d bytes in %s (%d records)", len(code), elapsed, len(result.Records))
		return RunFinishedMsg{
			Logs:     models.NewConsoleLogs(result, time.Now()),
			Duration: elapsed,
		}
	}
}

func saveCodeAfter(seq int) tea.Cmd {
	return tea.Tick(codeSaveDelay, func(_ time.Time) tea.Msg {
		return saveCodeTickMsg{seq: seq}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearNoticeAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

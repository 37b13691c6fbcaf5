package tui

import (
	"time"

	"github.com/watchfire-io/scratchpad/internal/models"
)

// RunFinishedMsg carries the console entries of one execution.
type RunFinishedMsg struct {
	Logs     []*models.ConsoleLog
	Duration time.Duration
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// NoticeMsg shows a short-lived status message such as "Formatted".
type NoticeMsg struct {
	Text string
}

// clearNoticeMsg clears the notice if no newer notice replaced it.
type clearNoticeMsg struct {
	seq int
}

// saveCodeTickMsg fires after the editor has been idle; seq identifies the edit.
type saveCodeTickMsg struct {
	seq int
}

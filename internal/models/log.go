package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/watchfire-io/scratchpad/internal/runner"
)

// ConsoleLog is one entry shown in the console panel and persisted between sessions.
type ConsoleLog struct {
	ID        string      `yaml:"id"`
	Type      runner.Kind `yaml:"type"`
	Message   string      `yaml:"message"`
	Timestamp time.Time   `yaml:"timestamp"`
}

// NewConsoleLogs converts the records of one run into console entries
// sharing the same timestamp.
func NewConsoleLogs(result runner.Result, now time.Time) []*ConsoleLog {
	logs := make([]*ConsoleLog, 0, len(result.Records))
	for _, rec := range result.Records {
		logs = append(logs, &ConsoleLog{
			ID:        uuid.NewString(),
			Type:      rec.Kind,
			Message:   rec.Message,
			Timestamp: now,
		})
	}
	return logs
}

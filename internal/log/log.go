// Package log holds the shared application logger.
package log

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	file   *os.File
	mu     sync.Mutex
)

func init() {
	logger = logrus.New()
	logger.SetLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
}

func levelFromEnv(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel
	case "WARN":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// GetLogger returns the shared logger instance.
func GetLogger() *logrus.Logger {
	return logger
}

// ToFile redirects the logger to path, creating parent directories.
// The TUI owns the terminal, so interactive sessions log here instead of stderr.
func ToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = f
	logger.SetOutput(f)
	return nil
}

// Discard silences the logger.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(io.Discard)
}

// Close releases the log file opened by ToFile, if any, and restores stderr.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
		file = nil
	}
	logger.SetOutput(os.Stderr)
}

// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global scratchpad directory.
	GlobalDirName = ".scratchpad"

	// HomeEnv overrides the global directory location.
	HomeEnv = "SCRATCHPAD_HOME"

	// LogsDirName is the name of the application logs directory.
	LogsDirName = "logs"
)

// File names
const (
	StorageFileName = "storage.yaml"
	AppLogFileName  = "scratchpad.log"
)

// GlobalDir returns the path to the global directory ($SCRATCHPAD_HOME or ~/.scratchpad/).
func GlobalDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalStorageFile returns the path to the storage.yaml file.
func GlobalStorageFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StorageFileName), nil
}

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// AppLogFile returns the path to the application log file.
func AppLogFile() (string, error) {
	dir, err := GlobalLogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppLogFileName), nil
}

// EnsureGlobalDir creates the global directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, levelFromEnv("DEBUG"))
	assert.Equal(t, logrus.DebugLevel, levelFromEnv("debug"))
	assert.Equal(t, logrus.WarnLevel, levelFromEnv("WARN"))
	assert.Equal(t, logrus.ErrorLevel, levelFromEnv("ERROR"))
	assert.Equal(t, logrus.InfoLevel, levelFromEnv(""))
	assert.Equal(t, logrus.InfoLevel, levelFromEnv("verbose"))
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scratchpad.log")
	require.NoError(t, ToFile(path))
	t.Cleanup(Close)

	GetLogger().Info("hello from test")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

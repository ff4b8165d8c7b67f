package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_LogFormat(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("usecase", `task created: "morning run"`)

	content, err := os.ReadFile(filepath.Join(dir, "logs", "fittrack.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	// Format: [timestamp] [INFO] [usecase] message
	assert.Contains(t, lines[0], "[INFO]")
	assert.Contains(t, lines[0], "[usecase]")
	assert.Contains(t, lines[0], `task created: "morning run"`)
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("store", "debug message")
	logger.Info("store", "info message")
	logger.Warn("store", "warn message")
	logger.Error("store", "error message")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "fittrack.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic and should not create any files.
	logger.Info("cli", "test message")
	logger.Error("cli", "error message")
}

func TestLogger_CreatesLogsDir(t *testing.T) {
	dir := t.TempDir()
	logsDir := filepath.Join(dir, "logs")

	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("cli", "test message")

	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestLogger_Close(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)

	logger.Info("cli", "test message")

	assert.NoError(t, logger.Close())
	assert.FileExists(t, filepath.Join(dir, "logs", "fittrack.log"))

	// Closing twice is safe.
	assert.NoError(t, logger.Close())
}

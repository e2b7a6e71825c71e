package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/testutil"
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
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func readLog(t *testing.T, stateDir string) string {
	t.Helper()
	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	return string(content)
}

func TestLogger_LogFormat(t *testing.T) {
	stateDir := t.TempDir()
	clock := &testutil.MockClock{NowTime: time.Date(2025, 12, 30, 9, 32, 51, 0, time.Local)}
	logger := NewWithClock(stateDir, slog.LevelInfo, clock)
	defer func() { _ = logger.Close() }()

	logger.Info("gutter", `refresh "a.go"`)

	lines := strings.Split(strings.TrimSpace(readLog(t, stateDir)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, `[2025-12-30 09:32:51] [INFO] [gutter] refresh "a.go"`, lines[0])
}

func TestLogger_LevelFiltering(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("blame", "debug message")
	logger.Info("blame", "info message")
	logger.Warn("blame", "warn message")
	logger.Error("blame", "error message")

	content := readLog(t, stateDir)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "[WARN] [blame] warn message")
	assert.Contains(t, content, "[ERROR] [blame] error message")
}

func TestLogger_Appends(t *testing.T) {
	stateDir := t.TempDir()

	first := New(stateDir, slog.LevelDebug)
	first.Debug("a", "one")
	require.NoError(t, first.Close())

	second := New(stateDir, slog.LevelDebug)
	second.Debug("a", "two")
	require.NoError(t, second.Close())

	content := readLog(t, stateDir)
	assert.Less(t, strings.Index(content, "one"), strings.Index(content, "two"))
}

func TestLogger_DisabledWhenEmptyStateDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	logger.Info("gutter", "test message")
	logger.Error("gutter", "error message")

	assert.Empty(t, logger.Path())
}

func TestLogger_CreateLogsDir(t *testing.T) {
	stateDir := filepath.Join(t.TempDir(), "blame-gutter")
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("gutter", "test message")

	stat, err := os.Stat(filepath.Join(stateDir, "logs"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
	assert.FileExists(t, logger.Path())
}

func TestLogger_CloseTwice(t *testing.T) {
	logger := New(t.TempDir(), slog.LevelInfo)
	logger.Info("gutter", "test message")

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
}

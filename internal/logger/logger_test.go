package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reset puts the default stderr logger back once the test is done.
func reset(t *testing.T) {
	t.Cleanup(func() {
		Close()
		require.NoError(t, InitializeWithConfig(Config{Level: "INFO"}))
	})
}

func TestTUIModeLogsToDataDir(t *testing.T) {
	reset(t)
	dataDir := t.TempDir()
	t.Setenv("WIDGETKIT_DATA_DIR", dataDir)

	require.NoError(t, InitializeWithConfig(Config{Level: "debug", TUIMode: true}))

	assert.True(t, IsTUIMode())
	assert.Equal(t, slog.LevelDebug, GetLevel())
	assert.Equal(t, "text", GetFormat())
	assert.Equal(t, filepath.Join(dataDir, "logs", "widgetkit.log"), GetLogFile())
	assert.DirExists(t, filepath.Join(dataDir, "logs"))
}

func TestStderrModeHasNoFile(t *testing.T) {
	reset(t)

	require.NoError(t, InitializeWithConfig(Config{Level: "warn", Format: "JSON"}))

	assert.False(t, IsTUIMode())
	assert.Empty(t, GetLogFile())
	assert.Equal(t, "json", GetFormat())
	assert.Equal(t, slog.LevelWarn, GetLevel())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("WIDGETKIT_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("WIDGETKIT_DEBUG", "")
	assert.Equal(t, "INFO", levelFromEnv())

	t.Setenv("WIDGETKIT_DEBUG", "true")
	assert.Equal(t, "DEBUG", levelFromEnv())

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, "error", levelFromEnv())

	t.Setenv("WIDGETKIT_LOG_LEVEL", "warn")
	assert.Equal(t, "warn", levelFromEnv())
}

func TestRecordsCarryAttributes(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "records.log")

	require.NoError(t, InitializeWithConfig(Config{Level: "debug", Format: "json", File: path}))
	Debug("opened", "component", "datepicker")
	Info("selected", "component", "select", "value", "paris")
	Warn("reload failed")
	Error("boom")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "DEBUG", first["level"])
	assert.Equal(t, "opened", first["msg"])
	assert.Equal(t, "datepicker", first["component"])
	assert.Contains(t, lines[1], `"value":"paris"`)
}

func TestLevelFiltersRecords(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "filtered.log")

	require.NoError(t, InitializeWithConfig(Config{Level: "warn", File: path}))
	Debug("hidden")
	Info("hidden too")
	Warn("shown")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "msg=shown")
}

func TestTUIModeNeedsWritableFile(t *testing.T) {
	reset(t)

	err := InitializeWithConfig(Config{TUIMode: true, File: "/proc/widgetkit/cannot/exist.log"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI mode requires file-based logging")
}

func TestCloseTwice(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "close.log")

	require.NoError(t, InitializeWithConfig(Config{File: path}))
	Info("before close")

	assert.NoError(t, Close())
	assert.NoError(t, Close())
	assert.FileExists(t, path)
}

func TestGettersAreSafeConcurrently(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "concurrent.log")
	require.NoError(t, InitializeWithConfig(Config{Level: "error", Format: "json", File: path}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			GetLogger().Debug("ignored")
			assert.Equal(t, slog.LevelError, GetLevel())
			assert.Equal(t, "json", GetFormat())
			assert.Equal(t, path, GetLogFile())
		}()
	}
	wg.Wait()
}

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
	tuiMode   bool
	output    io.Closer
	mu        sync.RWMutex
	once      sync.Once
)

// Config controls how the logger is built.
type Config struct {
	Level   string
	Format  string
	File    string
	TUIMode bool
}

func init() {
	Initialize()
}

// Initialize builds the default stderr logger from the environment.
func Initialize() {
	once.Do(func() {
		_ = InitializeWithConfig(Config{
			Level:  levelFromEnv(),
			Format: os.Getenv("LOG_FORMAT"),
		})
	})
}

func levelFromEnv() string {
	levelStr := os.Getenv("WIDGETKIT_LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}
	if levelStr == "" {
		levelStr = os.Getenv("WIDGETKIT_DEBUG")
		if levelStr == "1" || levelStr == "true" {
			levelStr = "DEBUG"
		} else {
			levelStr = "INFO"
		}
	}
	return levelStr
}

// InitializeWithConfig replaces the logger. In TUI mode records must go to a
// file (default ~/.widgetkit/logs/widgetkit.log) because stderr belongs to
// the alt screen.
func InitializeWithConfig(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	level := parseLevel(cfg.Level)
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "text"
	}

	file := cfg.File
	if cfg.TUIMode && file == "" {
		path, err := defaultLogFile()
		if err != nil {
			return fmt.Errorf("TUI mode requires file-based logging: %w", err)
		}
		file = path
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if file != "" {
		f, err := openLogFile(file)
		if err != nil {
			if cfg.TUIMode {
				return fmt.Errorf("TUI mode requires file-based logging: %w", err)
			}
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f
	}

	if output != nil {
		output.Close()
	}
	output = closer
	logLevel = level
	logFormat = format
	logFile = file
	tuiMode = cfg.TUIMode

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(handler)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// defaultLogFile mirrors config.LogDir; config logs through this package so
// it cannot be imported here.
func defaultLogFile() (string, error) {
	dataDir := os.Getenv("WIDGETKIT_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".widgetkit")
	}
	return filepath.Join(dataDir, "logs", "widgetkit.log"), nil
}

func parseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func GetLogger() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		Initialize()
		mu.RLock()
		l = logger
		mu.RUnlock()
	}
	return l
}

func GetLevel() slog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return logLevel
}

func GetFormat() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFormat
}

// GetLogFile returns the log file path, or "" when logging to stderr.
func GetLogFile() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFile
}

// IsTUIMode reports whether the logger was configured for the alt screen.
func IsTUIMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return tuiMode
}

// Close releases the log file, if any. It is safe to call more than once.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		return nil
	}
	err := output.Close()
	output = nil
	return err
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Global logger instance and synchronization
var (
	logger   *slog.Logger
	loggerMu sync.RWMutex
	logFile  *os.File // file handle for cleanup
	isInited bool
)

// LogLevel represents logging verbosity
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Config holds logger configuration
type Config struct {
	Level      LogLevel
	OutputPath string // Empty for stdout, or file path
	Format     string // "json" or "text"
}

// Init initializes the global logger with the given configuration.
// It should be called once by the host at startup; subsequent calls return
// an error until Close is called.
func Init(config Config) error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if isInited {
		return fmt.Errorf("logger already initialized; call Close() first to reinitialize")
	}

	var writer io.Writer

	if config.OutputPath == "" {
		writer = os.Stdout
	} else {
		logDir := filepath.Dir(config.OutputPath)
		if err := os.MkdirAll(logDir, 0o750); err != nil {
			return err
		}

		file, err := os.OpenFile(config.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		writer = file
		logFile = file
	}

	opts := &slog.HandlerOptions{Level: levelOf(config.Level)}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logger = slog.New(handler)
	isInited = true
	return nil
}

func levelOf(l LogLevel) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitDefault initializes the logger with sensible defaults: INFO level,
// text format, stdout. Safe to call multiple times.
func InitDefault() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	initDefaultLocked()
}

func initDefaultLocked() {
	if isInited {
		return
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	isInited = true
}

// Close closes the logger and any open file handle. After Close, Init may be
// called again. Safe to call multiple times.
func Close() error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if !isInited {
		return nil
	}

	var err error
	if logFile != nil {
		err = logFile.Close()
		logFile = nil
	}

	logger = nil
	isInited = false
	return err
}

// GetLogger returns the current logger, lazily initializing with defaults if
// the host never called Init.
func GetLogger() *slog.Logger {
	loggerMu.RLock()
	if isInited {
		l := logger
		loggerMu.RUnlock()
		return l
	}
	loggerMu.RUnlock()

	loggerMu.Lock()
	initDefaultLocked()
	l := logger
	loggerMu.Unlock()
	return l
}

// Debug logs a debug message via the global logger.
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info logs an info message via the global logger.
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn logs a warning message via the global logger.
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error logs an error message via the global logger.
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Package logger writes structured debug logs to a file so they never
// interfere with the terminal UI.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LevelDebug is for verbose debugging information
	LevelDebug LogLevel = iota
	// LevelInfo is for general operational information
	LevelInfo
	// LevelWarn is for warning conditions
	LevelWarn
	// LevelError is for error conditions
	LevelError
)

func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	slogLogger   *slog.Logger
	levelVar     = new(slog.LevelVar)
	logFile      *os.File
	mu           sync.Mutex
	logPath      string
	initDone     bool
	currentLevel = LevelInfo
)

// DefaultLogPath is used when Init has not been called before the first log line.
const DefaultLogPath = "/tmp/ragchat-debug.log"

// setLevel sets the minimum log level to output
func setLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	levelVar.Set(level.toSlogLevel())
}

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		setLevel(LevelDebug)
	} else {
		setLevel(LevelInfo)
	}
}

// Init opens path for appending and routes all subsequent logging there.
// Calling Init again after a successful call is a no-op until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return openLocked(path)
}

func openLocked(path string) error {
	if initDone {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	levelVar.Set(currentLevel.toSlogLevel())
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if initDone {
		return
	}
	if err := openLocked(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// Path returns the file currently receiving log output.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	ensureInit()
	l := slogLogger
	mu.Unlock()

	if l == nil || !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a printf-style debug message
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info writes a printf-style info message
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn writes a printf-style warning message
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error writes a printf-style error message
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset returns the logger to its pristine state so tests can re-Init.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	logPath = ""
	slogLogger = nil
	currentLevel = LevelInfo
	levelVar = new(slog.LevelVar)
}

// ClearLog removes the log file at path, or DefaultLogPath when path is
// empty. It reports whether a file was removed.
func ClearLog(path string) (bool, error) {
	if path == "" {
		path = DefaultLogPath
	}
	err := os.Remove(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ComponentLogger returns a slog.Logger with the component attribute pre-attached.
//
// Example:
//
//	log := logger.ComponentLogger("widget")
//	log.Debug("file removed", "index", i, "name", f.Name)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()

	if slogLogger == nil {
		return slog.Default()
	}
	return slogLogger.With(slog.String("component", component))
}

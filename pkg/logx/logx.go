// Package logx provides a small leveled logger used across the codebase.
package logx

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Level controls which messages are emitted.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu       sync.Mutex
	minLevel = LevelInfo
	std      = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel sets the minimum level that will be logged.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

// SetOutput redirects log output (mainly for tests).
func SetOutput(w *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	std = w
}

func output(l Level, prefix, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}
	std.Printf("%s %s", prefix, msg)
}

// Debug logs a debug message.
func Debug(args ...any) { output(LevelDebug, "DEBUG", fmt.Sprint(args...)) }

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	output(LevelDebug, "DEBUG", fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func Info(args ...any) { output(LevelInfo, "INFO", fmt.Sprint(args...)) }

// Infof logs a formatted informational message.
func Infof(format string, args ...any) {
	output(LevelInfo, "INFO", fmt.Sprintf(format, args...))
}

// Warn logs a warning.
func Warn(args ...any) { output(LevelWarn, "WARN", fmt.Sprint(args...)) }

// Warnf logs a formatted warning.
func Warnf(format string, args ...any) {
	output(LevelWarn, "WARN", fmt.Sprintf(format, args...))
}

// Error logs an error message.
func Error(args ...any) { output(LevelError, "ERROR", fmt.Sprint(args...)) }

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) {
	output(LevelError, "ERROR", fmt.Sprintf(format, args...))
}

// Fatalf logs a formatted error message and exits the process.
func Fatalf(format string, args ...any) {
	output(LevelError, "FATAL", fmt.Sprintf(format, args...))
	os.Exit(1)
}

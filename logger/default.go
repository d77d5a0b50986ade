package logger

import (
	"io"
	"sync"
	"time"

	"github.com/lumenlog/lumen/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log writes values at the given level using the default logger
func Log(level core.Level, values ...interface{}) {
	Default().Log(level, values...)
}

// Print writes values unfiltered and unlabeled using the default logger
func Print(values ...interface{}) {
	Default().Print(values...)
}

// Debug logs values at the debug level using the default logger
func Debug(values ...interface{}) {
	Default().Debug(values...)
}

// Info logs values at the info level using the default logger
func Info(values ...interface{}) {
	Default().Info(values...)
}

// Warn logs values at the warn level using the default logger
func Warn(values ...interface{}) {
	Default().Warn(values...)
}

// Error logs values at the error level using the default logger
func Error(values ...interface{}) {
	Default().Error(values...)
}

// Critical logs values at the critical level using the default logger
func Critical(values ...interface{}) {
	Default().Critical(values...)
}

// Fatal logs values at the fatal level using the default logger.
// Fatal messages are never suppressed by the minimum level.
func Fatal(values ...interface{}) {
	Default().Fatal(values...)
}

// SetMinimumLevel sets the default logger's threshold and returns the
// threshold now in effect
func SetMinimumLevel(level core.Level) core.Level {
	return Default().SetMinimumLevel(level)
}

// SetLabel replaces the label for level on the default logger
func SetLabel(level core.Level, label string) {
	Default().SetLabel(level, label)
}

// SetColor replaces the color escape for level on the default logger
func SetColor(level core.Level, color string) {
	Default().SetColor(level, color)
}

// SetOutput redirects the default logger's output to w
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// EnableColor turns on ANSI color output on the default logger
func EnableColor() {
	Default().EnableColor()
}

// DisableColor turns off ANSI color output on the default logger
func DisableColor() {
	Default().DisableColor()
}

// StartTimer starts a named interval timer on the default logger
func StartTimer(label string) string {
	return Default().StartTimer(label)
}

// EndTimer consumes a named timer on the default logger
func EndTimer(label string) time.Duration {
	return Default().EndTimer(label)
}

// GetTimer peeks at a named timer on the default logger
func GetTimer(label string) time.Duration {
	return Default().GetTimer(label)
}

// LogDuration ends a timer and logs its duration using the default logger
func LogDuration(label string, unit time.Duration, prefix, suffix string) {
	Default().LogDuration(label, unit, prefix, suffix)
}

// LogDurationPersistent logs a timer's duration without consuming it
// using the default logger
func LogDurationPersistent(label string, unit time.Duration, prefix, suffix string) {
	Default().LogDurationPersistent(label, unit, prefix, suffix)
}

// LogDurationAt is LogDuration with an explicit level
func LogDurationAt(level core.Level, label string, unit time.Duration, prefix, suffix string) {
	Default().LogDurationAt(level, label, unit, prefix, suffix)
}

// LogDurationPersistentAt is LogDurationPersistent with an explicit level
func LogDurationPersistentAt(level core.Level, label string, unit time.Duration, prefix, suffix string) {
	Default().LogDurationPersistentAt(level, label, unit, prefix, suffix)
}

// InitLogFile redirects the default logger's output to a log file
func InitLogFile(dir, filename string) {
	Default().InitLogFile(dir, filename)
}

// DumpLogFile closes the default logger's log file, if any
func DumpLogFile() {
	Default().DumpLogFile()
}

package logger

import (
	"time"

	"github.com/lumenlog/lumen/core"
)

// StartTimer records the current time under label, overwriting any
// timer already running under that label. The label is returned
// unchanged for chaining.
func (l *Logger) StartTimer(label string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timers[label] = time.Now()
	return label
}

// EndTimer removes the timer under label and returns the elapsed time
// with nanosecond precision. A label with no running timer produces an
// error-level log line and the core.TimerNotFound sentinel.
func (l *Logger) EndTimer(label string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.takeTimerLocked(label, true)
}

// GetTimer returns the elapsed time of the timer under label without
// removing it. Sentinel and error behavior match EndTimer.
func (l *Logger) GetTimer(label string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.takeTimerLocked(label, false)
}

func (l *Logger) takeTimerLocked(label string, consume bool) time.Duration {
	now := time.Now()
	start, ok := l.timers[label]
	if !ok {
		l.logLocked(core.ErrorLevel, true, "Label ", label, " not found!\n")
		return core.TimerNotFound
	}
	if consume {
		delete(l.timers, label)
	}
	return now.Sub(start)
}

// LogDuration ends the timer under label and logs its duration at the
// info level. A zero unit means milliseconds; an empty prefix becomes
// "<label>: "; an empty suffix is derived from the unit ("ms", "ns",
// ...). Nothing is logged when the timer does not exist, beyond the
// error line EndTimer already emits.
func (l *Logger) LogDuration(label string, unit time.Duration, prefix, suffix string) {
	l.LogDurationAt(core.InfoLevel, label, unit, prefix, suffix)
}

// LogDurationPersistent is LogDuration without consuming the timer.
func (l *Logger) LogDurationPersistent(label string, unit time.Duration, prefix, suffix string) {
	l.LogDurationPersistentAt(core.InfoLevel, label, unit, prefix, suffix)
}

// LogDurationAt is LogDuration with an explicit level.
func (l *Logger) LogDurationAt(level core.Level, label string, unit time.Duration, prefix, suffix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logDurationLocked(level, label, unit, prefix, suffix, true)
}

// LogDurationPersistentAt is LogDurationPersistent with an explicit level.
func (l *Logger) LogDurationPersistentAt(level core.Level, label string, unit time.Duration, prefix, suffix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logDurationLocked(level, label, unit, prefix, suffix, false)
}

func (l *Logger) logDurationLocked(level core.Level, label string, unit time.Duration, prefix, suffix string, consume bool) {
	dur := l.takeTimerLocked(label, consume)
	if dur == core.TimerNotFound {
		return
	}
	if unit <= 0 {
		unit = time.Millisecond
	}
	if suffix == "" {
		suffix = core.UnitSuffix(unit)
	}
	if prefix == "" {
		prefix = label + ": "
	}
	l.logLocked(level, true, prefix, int64(dur/unit), suffix, "\n")
}

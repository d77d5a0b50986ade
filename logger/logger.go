package logger

import (
	"io"
	"sync"
	"time"

	"github.com/lumenlog/lumen/core"
	"github.com/lumenlog/lumen/formatter"
	"github.com/lumenlog/lumen/handler"
)

// Logger is the process-wide logging context: the level threshold, the
// per-level label and color registry, the color flag, the output sink,
// and the interval timers. A single mutex — the gate — serializes every
// public entry point, so one call's output is never interleaved with
// another goroutine's.
//
// Internal methods with the Locked suffix assume the gate is held.
// Error paths that log while already inside the gate (a missing timer
// label, a directory-creation failure) go through logLocked directly
// instead of re-entering a public function.
type Logger struct {
	mu       sync.Mutex
	labels   [core.NumLevels]string
	colors   [core.NumLevels]string
	minLevel core.Level
	color    bool
	sink     *handler.Sink
	timers   map[string]time.Time
}

// New creates a Logger with the default state: minimum level Info,
// color on, default labels and colors, output to the console.
func New() *Logger {
	return &Logger{
		labels:   core.DefaultLabels,
		colors:   core.DefaultColors,
		minLevel: core.InfoLevel,
		color:    true,
		sink:     handler.NewSink(),
		timers:   make(map[string]time.Time),
	}
}

// Log writes values at the given level. The first value carries the
// "[LABEL] " prefix, the rest follow bare. No newline is appended;
// callers supply "\n" when they want one.
func (l *Logger) Log(level core.Level, values ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logLocked(level, true, values...)
}

// Print writes values unfiltered and unlabeled, regardless of the
// minimum level.
func (l *Logger) Print(values ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logLocked(core.OutLevel, false, values...)
}

// Debug logs values at the debug level.
func (l *Logger) Debug(values ...interface{}) { l.Log(core.DebugLevel, values...) }

// Info logs values at the info level.
func (l *Logger) Info(values ...interface{}) { l.Log(core.InfoLevel, values...) }

// Warn logs values at the warn level.
func (l *Logger) Warn(values ...interface{}) { l.Log(core.WarnLevel, values...) }

// Error logs values at the error level.
func (l *Logger) Error(values ...interface{}) { l.Log(core.ErrorLevel, values...) }

// Critical logs values at the critical level.
func (l *Logger) Critical(values ...interface{}) { l.Log(core.CriticalLevel, values...) }

// Fatal logs values at the fatal level. Fatal messages bypass the
// minimum-level check and are never suppressed.
func (l *Logger) Fatal(values ...interface{}) { l.Log(core.FatalLevel, values...) }

// logLocked is the admission check plus emit loop. Gate must be held.
func (l *Logger) logLocked(level core.Level, withLabel bool, values ...interface{}) {
	// OutLevel sorts above every threshold, fatal is exempt by contract.
	if level < l.minLevel && level != core.FatalLevel {
		return
	}

	w := l.sink.Writer()
	for i, v := range values {
		l.emitLocked(w, level, formatter.Render(v), withLabel && i == 0)
	}
}

// emitLocked assembles one fragment: optional colorized "[LABEL] "
// prefix, then the payload, itself wrapped in the level's color when
// color is enabled. Write errors are swallowed — logging never raises.
func (l *Logger) emitLocked(w io.Writer, level core.Level, text string, withLabel bool) {
	if withLabel {
		if l.color {
			io.WriteString(w, l.colors[level])
		}
		io.WriteString(w, "[")
		io.WriteString(w, l.labels[level])
		io.WriteString(w, "] ")
		if l.color {
			io.WriteString(w, core.ResetColor)
		}
	}
	if l.color {
		io.WriteString(w, l.colors[level])
		io.WriteString(w, text)
		io.WriteString(w, core.ResetColor)
	} else {
		io.WriteString(w, text)
	}
}

// SetMinimumLevel sets the threshold below which non-fatal messages are
// suppressed and returns the threshold now in effect. Invalid levels
// leave the threshold unchanged.
func (l *Logger) SetMinimumLevel(level core.Level) core.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level.Valid() {
		l.minLevel = level
	}
	return l.minLevel
}

// SetLabel replaces the label printed for level. Takes effect for
// subsequent calls only.
func (l *Logger) SetLabel(level core.Level, label string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level.Valid() {
		l.labels[level] = label
	}
}

// SetColor replaces the color escape sequence for level. Takes effect
// for subsequent calls only.
func (l *Logger) SetColor(level core.Level, color string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level.Valid() {
		l.colors[level] = color
	}
}

// EnableColor turns on ANSI color output.
func (l *Logger) EnableColor() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = true
}

// DisableColor turns off ANSI color output.
func (l *Logger) DisableColor() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = false
}

// SetOutput redirects subsequent output to w. The logger does not take
// ownership of w. Passing nil is a precondition violation and panics.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink.SetOutput(w)
}

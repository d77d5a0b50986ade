package logger

import "github.com/lumenlog/lumen/core"

// InitLogFile redirects output to <dir>/<filename>, creating dir
// recursively first. An empty filename means handler.DefaultLogFileName.
// On success color output is forced off, since a file should not
// receive ANSI escapes. A directory-creation failure is reported as an
// error-level message on the previous sink, which stays active; so does
// a failure opening the file itself, silently.
func (l *Logger) InitLogFile(dir, filename string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.sink.OpenFile(dir, filename); err != nil {
		l.logLocked(core.ErrorLevel, true, err.Error(), "\n")
		return
	}
	if l.sink.FileActive() {
		l.color = false
	}
}

// DumpLogFile closes the current log file, if any, restoring output to
// the default console destination. A second call is a no-op.
func (l *Logger) DumpLogFile() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink.CloseFile()
}

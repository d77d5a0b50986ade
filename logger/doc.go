// Package logger is the public API of lumen. Most users only need to
// import this package.
//
// A Logger is a process-wide logging context: seven ordered levels,
// each with a mutable label and ANSI color, a minimum-level threshold
// (Info by default; Fatal is never suppressed), a single output sink
// (console by default, or a log file via InitLogFile), and named
// interval timers. The package initializes a default Logger in init(),
// and the package-level functions Info, Error, StartTimer, etc.
// delegate to it, so simple programs can log without any setup:
//
//	logger.Info("listening on port ", port, "\n")
//
// Every call accepts arbitrary values. Values with a native text form
// are rendered verbatim; opaque values fall back to a "<type> at
// 0x<hex>" representation. No newline is ever appended — callers pass
// "\n" explicitly.
//
// All public entry points acquire one shared mutex for the whole call,
// so a call's output (label plus all its values) appears contiguously
// even under concurrent use from many goroutines. Writes are
// synchronous: a log call blocks until its bytes reach the sink. There
// is no queueing, sampling, or rotation.
//
// Interval timers are started with StartTimer and read with EndTimer
// (consuming) or GetTimer (peeking); querying a label with no running
// timer logs an error line and returns the core.TimerNotFound sentinel.
// LogDuration and LogDurationPersistent wrap this into a formatted
// "<label>: <n><unit>" line.
package logger

package handler

import (
	"io"
	"os"
)

// Console is the default output destination restored by CloseFile.
// Overridable in tests.
var Console io.Writer = os.Stdout

// Sink owns the logger's current output destination: the console-like
// stream by default, or an open log file. Sink itself is not
// goroutine-safe; the logger's gate serializes all access.
type Sink struct {
	out  io.Writer
	file *os.File
}

// NewSink returns a sink writing to the default console destination.
func NewSink() *Sink {
	return &Sink{out: Console}
}

// SetOutput redirects subsequent writes to w. The sink does not take
// ownership of w's lifetime. A nil destination is a caller error.
func (s *Sink) SetOutput(w io.Writer) {
	if w == nil {
		panic("handler: SetOutput called with nil writer")
	}
	s.out = w
}

// Writer returns the current output destination.
func (s *Sink) Writer() io.Writer {
	return s.out
}

// FileActive reports whether output currently goes to an open log file.
func (s *Sink) FileActive() bool {
	return s.file != nil && s.out == s.file
}

package handler

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultLogFileName is used when OpenFile is called with an empty name.
const DefaultLogFileName = "Log.log"

// OpenFile opens <dir>/<name> as the new output destination, creating
// dir recursively first. The file is created fresh (truncated). Any
// previously open log file is closed before the new one is opened.
//
// A directory-creation failure is returned for the caller to report;
// the previous destination stays active. A failure opening the file
// itself also leaves the previous destination in place, silently.
func (s *Sink) OpenFile(dir, name string) error {
	if name == "" {
		name = DefaultLogFileName
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to open log file '%s'", filepath.Join(dir, name))
		}
	}

	if s.file != nil {
		s.CloseFile()
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil
	}

	s.file = f
	s.out = f
	return nil
}

// CloseFile closes the open log file, if any, restoring output to the
// default console destination when the file is the current target.
// Idempotent: calling it with no file open is a no-op.
func (s *Sink) CloseFile() {
	if s.file == nil {
		return
	}
	if s.out == s.file {
		s.out = Console
	}
	s.file.Close()
	s.file = nil
}

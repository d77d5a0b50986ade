// Package handler owns the logger's output destination.
//
// A Sink holds the current io.Writer: the process console by default,
// a caller-supplied stream after SetOutput, or an open log file after
// OpenFile. OpenFile creates the directory recursively, truncates the
// file, and closes any file opened earlier; CloseFile restores the
// console destination and is idempotent.
//
// Writes are synchronous and unbuffered — there is exactly one active
// sink, no queueing, and no rotation. Sink carries no locking of its
// own: the logger package serializes every access behind its gate.
package handler

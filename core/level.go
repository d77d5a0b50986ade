package core

import "strings"

// Level represents the severity level of a log call
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default threshold)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for serious errors the program may not recover from
	CriticalLevel
	// FatalLevel for fatal messages (never filtered by the threshold)
	FatalLevel
	// OutLevel for unfiltered, unlabeled output
	OutLevel

	// NumLevels is the size of the closed level set
	NumLevels = int(OutLevel) + 1
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case FatalLevel:
		return "FATAL"
	case OutLevel:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the seven defined levels.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= OutLevel
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "CRITICAL":
		return CriticalLevel
	case "FATAL":
		return FatalLevel
	case "OUT", "LOG":
		return OutLevel
	default:
		return InfoLevel
	}
}

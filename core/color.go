package core

// ResetColor ends an ANSI SGR color run.
const ResetColor = "\x1b[0m"

// DefaultLabels holds the initial per-level labels. Index by Level.
var DefaultLabels = [NumLevels]string{
	"DEBUG",
	"INFO",
	"WARNING",
	"ERROR",
	"CRITICAL",
	"FATAL",
	"OUT",
}

// DefaultColors holds the initial per-level ANSI SGR escape sequences.
// Index by Level.
var DefaultColors = [NumLevels]string{
	"\x1b[36m",     // DebugLevel, light blue
	"\x1b[32m",     // InfoLevel, green
	"\x1b[33m",     // WarnLevel, yellow
	"\x1b[31m",     // ErrorLevel, red
	"\x1b[1;31m",   // CriticalLevel, bold red
	"\x1b[4;1;31m", // FatalLevel, bold underlined red
	"\x1b[34m",     // OutLevel, blue
}

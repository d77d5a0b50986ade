// Package core defines the shared types used across the lumen logger.
//
// It provides the Level type for severity filtering, the default
// per-level label and ANSI color tables, and the timer sentinel and
// unit-suffix helpers shared by the logger's interval timers.
//
// The level set is closed: seven levels ordered by increasing severity,
// with OutLevel as the "always print, no label" channel used by
// logger.Print. Levels cannot be created dynamically; every level
// always has exactly one label and one color registered for it.
package core

package core

import "time"

// TimerNotFound is returned by timer queries for labels that have no
// running timer. It is a sentinel, not an elapsed time: callers must
// check for it before treating the result as a duration.
const TimerNotFound = time.Duration(-1)

// UnitSuffix returns the conventional suffix for a duration unit
// (time.Millisecond => "ms", time.Second => "s", ...). Unknown units
// fall back to "ms".
func UnitSuffix(unit time.Duration) string {
	switch unit {
	case time.Nanosecond:
		return "ns"
	case time.Microsecond:
		return "us"
	case time.Millisecond:
		return "ms"
	case time.Second:
		return "s"
	case time.Hour:
		return "h"
	default:
		return "ms"
	}
}

package core

import (
	"testing"
	"time"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{FatalLevel, "FATAL"},
		{OutLevel, "OUT"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	// The threshold check relies on the declaration order.
	ordered := []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel, FatalLevel, OutLevel}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"critical", CriticalLevel},
		{"fatal", FatalLevel},
		{"out", OutLevel},
		{"log", OutLevel},
		{"nonsense", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelValid(t *testing.T) {
	for l := DebugLevel; l <= OutLevel; l++ {
		if !l.Valid() {
			t.Errorf("Level(%d).Valid() = false, want true", l)
		}
	}
	if Level(-1).Valid() {
		t.Error("Level(-1).Valid() = true, want false")
	}
	if Level(NumLevels).Valid() {
		t.Errorf("Level(%d).Valid() = true, want false", NumLevels)
	}
}

func TestLabelColorTablesCoverAllLevels(t *testing.T) {
	for l := DebugLevel; l <= OutLevel; l++ {
		if DefaultLabels[l] == "" {
			t.Errorf("no default label for level %v", l)
		}
		if DefaultColors[l] == "" {
			t.Errorf("no default color for level %v", l)
		}
		if DefaultLabels[l] != l.String() {
			t.Errorf("default label %q drifted from String() %q", DefaultLabels[l], l.String())
		}
	}
}

func TestUnitSuffix(t *testing.T) {
	tests := []struct {
		unit time.Duration
		want string
	}{
		{time.Nanosecond, "ns"},
		{time.Microsecond, "us"},
		{time.Millisecond, "ms"},
		{time.Second, "s"},
		{time.Hour, "h"},
		{3 * time.Second, "ms"}, // unknown unit falls back
	}

	for _, tt := range tests {
		if got := UnitSuffix(tt.unit); got != tt.want {
			t.Errorf("UnitSuffix(%v) = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

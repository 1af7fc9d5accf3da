package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestValidLevel(t *testing.T) {
	if !ValidLevel("Warn") {
		t.Error("ValidLevel(Warn) = false, want true")
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true, want false")
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf, Prefix: "test"})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown %d", 1)
	l.Error("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "[WARN] test: shown 1") {
		t.Errorf("output missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] test: shown 2") {
		t.Errorf("output missing error line: %q", out)
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})

	l.WithComponent("prompt").WithField("action", "Jump").Info("miss")

	out := buf.String()
	if !strings.Contains(out, "{action=Jump, component=prompt}") {
		t.Errorf("fields not rendered in sorted order: %q", out)
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Config{Level: LevelDebug, Output: &buf})
	_ = parent.WithField("k", "v")

	parent.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("nothing %s", "here")

	var nilLogger *Logger
	nilLogger.Info("no panic")

	if OrNull(nil) != NullLogger {
		t.Error("OrNull(nil) should return NullLogger")
	}
}

func TestSetLogger(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	var buf bytes.Buffer
	custom := New(Config{Level: LevelDebug, Output: &buf})
	SetLogger(custom)

	if GetLogger() != custom {
		t.Error("GetLogger() did not return the logger passed to SetLogger")
	}
}

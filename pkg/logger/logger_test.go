package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitAndLevelString(t *testing.T) {
	defer Init("info")
	cases := map[string]string{
		"debug":    "debug",
		"WARN":     "warn",
		"warning":  "warn",
		"Error":    "error",
		"fatal":    "fatal",
		"nonsense": "info",
		"":         "info",
	}
	for in, want := range cases {
		Init(in)
		if got := LevelString(); got != want {
			t.Fatalf("Init(%q): LevelString() = %q, want %q", in, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()
	defer Init("info")

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Error("error-msg")

	out := buf.String()
	if strings.Contains(out, "debug-msg") || strings.Contains(out, "info-msg") {
		t.Fatalf("debug/info messages should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn-msg") {
		t.Fatalf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR] error-msg") {
		t.Fatalf("error message missing: %q", out)
	}

	Init("debug")
	buf.Reset()
	Debug("now-visible")
	if !strings.Contains(buf.String(), "[DEBUG] now-visible") {
		t.Fatalf("debug message expected at debug level, got: %q", buf.String())
	}
}

func TestFatalfExits(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	code := -1
	prevExit := exit
	exit = func(c int) { code = c }
	defer func() { exit = prevExit }()

	Init("fatal")
	defer Init("info")
	Fatalf("boom %d", 7)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "[FATAL] boom 7") {
		t.Fatalf("fatal message missing: %q", buf.String())
	}
}

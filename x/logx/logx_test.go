package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWriterPrefixAndKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "blink", LevelInfo)
	l.Info("LED initialized.", "pin", 25)

	out := buf.String()
	for _, want := range []string{"blink", "LED initialized.", "pin=25", "INFO"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "t", LevelWarn)
	l.Debug("hidden-debug")
	l.Info("hidden-info")
	l.Warn("shown-warn")
	l.Error("shown-error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("filtered levels leaked: %q", out)
	}
	if !strings.Contains(out, "shown-warn") || !strings.Contains(out, "shown-error") {
		t.Fatalf("missing warn/error lines: %q", out)
	}
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "leds", LevelDebug).With("role", "onboard")
	l.Debug("flashed", "times", 2)
	out := buf.String()
	if !strings.Contains(out, "role=onboard") || !strings.Contains(out, "times=2") {
		t.Fatalf("fields missing: %q", out)
	}
}

func TestNopAndLevelStrings(t *testing.T) {
	n := Nop()
	n.Info("x")
	if n.With("a", 1) == nil {
		t.Fatal("Nop.With returned nil")
	}
	if LevelDebug.String() != "DEBU" || LevelError.String() != "ERRO" || Level(9).String() != "????" {
		t.Fatal("level strings")
	}
}

package debug

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetEnabled(false)
	t.Cleanup(func() { SetEnabled(false) })

	Log("hidden %d", 1)
	LogIf(true, "hidden too")
	LogTiming("op", time.Millisecond)

	if buf.Len() != 0 {
		t.Errorf("expected no output while disabled, got %q", buf.String())
	}
}

func TestLogEnabledWritesPrefixedLines(t *testing.T) {
	var buf bytes.Buffer
	SetEnabled(true)
	SetOutput(&buf)
	t.Cleanup(func() { SetEnabled(false) })

	Log("section %s", "overview")
	LogIf(false, "skipped")
	LogTiming("render", 2*time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, prefix) || !strings.Contains(out, "section overview") {
		t.Errorf("missing log line, got %q", out)
	}
	if strings.Contains(out, "skipped") {
		t.Errorf("LogIf(false) should not write, got %q", out)
	}
	if !strings.Contains(out, "render took 2ms") {
		t.Errorf("missing timing line, got %q", out)
	}
	if !Enabled() {
		t.Error("expected Enabled() after SetEnabled(true)")
	}
}

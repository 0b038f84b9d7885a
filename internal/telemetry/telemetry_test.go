package telemetry

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiscardEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	l := Discard()
	l.Saturated(1, 4, 4)
	l.ArenaExhausted(8, 8)
	l.Reset(1, 4)
	if buf.Len() != 0 {
		t.Fatalf("Discard wrote to an unrelated buffer: %q", buf.String())
	}
}

func TestSaturatedWritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Saturated(2, 9, 10)

	out := buf.String()
	if !strings.Contains(out, "probe saturated") {
		t.Fatalf("expected a saturation message, got %q", out)
	}
	if !strings.Contains(out, `"tier":2`) {
		t.Fatalf("expected tier field in event, got %q", out)
	}
}

func TestResetWritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Reset(0, 3)

	out := buf.String()
	if !strings.Contains(out, "tier reset") {
		t.Fatalf("expected a reset message, got %q", out)
	}
}

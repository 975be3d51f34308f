package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &out); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return out
}

func TestLogger_WritesServiceFieldsAndKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Writer: &buf, Service: "club-brackets", Env: "dev"})

	logger.Info("bracket resolved", "tournament_id", "cup", "rounds", 3, "error", errors.New("boom"))

	entry := decodeLine(t, &buf)
	if entry["msg"] != "bracket resolved" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["service"] != "club-brackets" || entry["env"] != "dev" {
		t.Fatalf("missing service fields: %v", entry)
	}
	if entry["tournament_id"] != "cup" || entry["rounds"] != float64(3) || entry["error"] != "boom" {
		t.Fatalf("unexpected key values: %v", entry)
	}
}

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Writer: &buf})

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02},
		SpanID:     trace.SpanID{0x03},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.WarnContext(ctx, "unknown stage", "stage", "playoff")

	entry := decodeLine(t, &buf)
	if entry["trace_id"] != spanCtx.TraceID().String() || entry["span_id"] != spanCtx.SpanID().String() {
		t.Fatalf("missing trace fields: %v", entry)
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Writer: &buf})

	logger.Info("skipped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	logger.With("k", "v").Warn("still no panic")
}
